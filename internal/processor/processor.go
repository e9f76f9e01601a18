package processor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/cache"
	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/cli"
	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/dataset"
	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal/translation"
)

// Processor handles the main dataset translation logic
type Processor struct {
	flags      *cli.Flags
	translator translation.Translator
	store      *cache.Store
}

type runStats struct {
	translated int
	cached     int
	blank      int
	resumed    int
}

// NewProcessor creates a new dataset processor from parsed flags
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	config := &translation.Config{
		Provider:       flags.Provider,
		Model:          flags.Model,
		RequestTimeout: flags.RequestTimeout,
		Temperature:    0.2,
		OpenAIKey:      cli.GetOpenAIKey(),
		GeminiKey:      cli.GetGeminiKey(),
	}

	translator, err := translation.NewTranslator(config)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		flags:      flags,
		translator: translation.WithRetry(translator, flags.MaxRetries),
	}

	if flags.CacheFile != "" {
		store, err := cache.Open(flags.CacheFile, flags.Model)
		if err != nil {
			// The cache is an optimization; a broken cache file must
			// not block the run
			fmt.Fprintf(os.Stderr, "Warning: translation cache disabled: %v\n", err)
		} else {
			p.store = store
		}
	}

	return p, nil
}

// Close releases the translation cache, if any
func (p *Processor) Close() error {
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}

// Run translates the input dataset and writes the Vietnamese output file
func (p *Processor) Run(ctx context.Context) error {
	src, err := dataset.ReadLines(p.flags.InputFile)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		fmt.Println("Input dataset is empty, nothing to translate.")
		return nil
	}

	var out []string
	stats := runStats{}

	if p.flags.Resume {
		existing, err := dataset.ReadExisting(p.flags.OutputFile)
		if err != nil {
			return err
		}
		if len(existing) > len(src) {
			return fmt.Errorf("output has %d lines but input only %d; refusing to resume", len(existing), len(src))
		}
		out = existing
		stats.resumed = len(existing)
		if stats.resumed > 0 {
			fmt.Printf("[resume] Already translated: %d lines\n", stats.resumed)
		}
		if stats.resumed == len(src) {
			fmt.Println("Output already complete, nothing to do.")
			return nil
		}
	}

	remaining := src[len(out):]
	chunks := dataset.Chunk(remaining, p.flags.BatchSize)

	for _, batch := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		results, err := p.translateChunk(ctx, batch, &stats)
		if err != nil {
			return err
		}
		out = append(out, results...)

		// Flush after every batch so an interrupted run can resume
		if err := dataset.WriteLines(p.flags.OutputFile, out); err != nil {
			return err
		}
		fmt.Printf("Progress: %d/%d lines\n", len(out), len(src))
	}

	p.printSummary(len(src), stats)
	return nil
}

// translateChunk produces one output line per input line, serving lines
// from the cache where possible and calling the provider for the rest.
func (p *Processor) translateChunk(ctx context.Context, batch []string, stats *runStats) ([]string, error) {
	results := make([]string, len(batch))

	if dataset.AllBlank(batch) {
		stats.blank += len(batch)
		return results, nil
	}

	var missIdx []int
	var missLines []string
	for i, line := range batch {
		if p.store != nil {
			translated, ok, err := p.store.Get(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cache lookup failed: %v\n", err)
			} else if ok {
				results[i] = translated
				stats.cached++
				continue
			}
		}
		missIdx = append(missIdx, i)
		missLines = append(missLines, line)
	}

	if len(missLines) == 0 {
		return results, nil
	}

	// Cache hits can leave only blank lines behind; no point sending
	// those to the API
	if dataset.AllBlank(missLines) {
		stats.blank += len(missLines)
		return results, nil
	}

	translated, err := p.translator.TranslateBatch(ctx, missLines)
	if err != nil {
		return nil, fmt.Errorf("failed to translate batch: %w", err)
	}
	stats.translated += len(translated)

	pairs := make([]cache.Pair, 0, len(translated))
	for k, i := range missIdx {
		results[i] = translated[k]
		if strings.TrimSpace(missLines[k]) != "" {
			pairs = append(pairs, cache.Pair{Source: missLines[k], Translation: translated[k]})
		}
	}

	if p.store != nil {
		if err := p.store.PutBatch(pairs); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to store translations in cache: %v\n", err)
		}
	}

	return results, nil
}

func (p *Processor) printSummary(total int, stats runStats) {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Total lines: %d\n", total)
	fmt.Printf("Translated: %d\n", stats.translated)
	if stats.resumed > 0 {
		fmt.Printf("Resumed (already done): %d\n", stats.resumed)
	}
	if stats.cached > 0 {
		fmt.Printf("Served from cache: %d\n", stats.cached)
	}
	if stats.blank > 0 {
		fmt.Printf("Blank lines passed through: %d\n", stats.blank)
	}
}
