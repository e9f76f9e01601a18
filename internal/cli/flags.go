package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputFile  string
	OutputFile string
	Resume     bool
	ListModels bool

	// Translation flags
	Provider       string
	Model          string
	BatchSize      int
	MaxRetries     int
	RequestTimeout time.Duration
	CacheFile      string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:       "openai",
		Model:          "gpt-4o-mini",
		BatchSize:      120,
		MaxRetries:     8,
		RequestTimeout: 120 * time.Second,
	}
}
