package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestNewFlags_Defaults(t *testing.T) {
	flags := NewFlags()

	if flags.Provider != "openai" {
		t.Errorf("Expected default provider 'openai', got '%s'", flags.Provider)
	}
	if flags.Model != "gpt-4o-mini" {
		t.Errorf("Expected default model 'gpt-4o-mini', got '%s'", flags.Model)
	}
	if flags.BatchSize != 120 {
		t.Errorf("Expected default batch size 120, got %d", flags.BatchSize)
	}
	if flags.MaxRetries != 8 {
		t.Errorf("Expected default max retries 8, got %d", flags.MaxRetries)
	}
	if flags.RequestTimeout != 120*time.Second {
		t.Errorf("Expected default request timeout 120s, got %v", flags.RequestTimeout)
	}
	if flags.Resume {
		t.Error("Resume should default to false")
	}
}

func TestFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Flags)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(f *Flags) {},
		},
		{
			name:    "missing input",
			mutate:  func(f *Flags) { f.InputFile = "" },
			wantErr: true,
		},
		{
			name:    "missing output",
			mutate:  func(f *Flags) { f.OutputFile = "" },
			wantErr: true,
		},
		{
			name:    "zero batch size",
			mutate:  func(f *Flags) { f.BatchSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative retries",
			mutate:  func(f *Flags) { f.MaxRetries = -1 },
			wantErr: true,
		},
		{
			name:    "same input and output",
			mutate:  func(f *Flags) { f.OutputFile = "./en.txt" },
			wantErr: true,
		},
		{
			name: "list-models needs no files",
			mutate: func(f *Flags) {
				f.InputFile = ""
				f.OutputFile = ""
				f.ListModels = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			flags.InputFile = "en.txt"
			flags.OutputFile = "vi.txt"
			tt.mutate(flags)

			err := flags.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd == nil {
		t.Fatal("CreateRootCommand returned nil")
	}

	for _, name := range []string{"input", "output", "model", "batch-size", "resume", "provider", "cache"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Flag --%s not registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Persistent flag --config not registered")
	}
}

func TestCreateRootCommand_ParsesFlags(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cmd.SetArgs([]string{
		"--input", "Dataset_Full_EN.txt",
		"--output", "Dataset_Full_Vietnamese.txt",
		"--model", "gpt-4o",
		"--batch-size", "40",
		"--resume",
	})
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if flags.InputFile != "Dataset_Full_EN.txt" {
		t.Errorf("InputFile = %s", flags.InputFile)
	}
	if flags.Model != "gpt-4o" {
		t.Errorf("Model = %s", flags.Model)
	}
	if flags.BatchSize != 40 {
		t.Errorf("BatchSize = %d", flags.BatchSize)
	}
	if !flags.Resume {
		t.Error("Resume not set")
	}
}
