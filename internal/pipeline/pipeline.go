// Package pipeline orchestrates Source → Filter → Sink processing.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/Geun-Oh/not/internal/fault"
	"github.com/Geun-Oh/not/internal/filter"
	"github.com/Geun-Oh/not/internal/log"
	"github.com/Geun-Oh/not/internal/monitor"
	"github.com/Geun-Oh/not/internal/sink"
	"github.com/Geun-Oh/not/internal/source"
)

// Config holds pipeline configuration.
type Config struct {
	Source source.Source
	// Filter decides which lines are kept: a line is written only when
	// Filter.Match returns true. Wrap a predicate in filter.NewExcludeFilter
	// to suppress the lines it matches.
	Filter filter.Filter
	Sink   sink.Opener
	Stats  *monitor.Stats // optional
}

// Run executes the pipeline: opens the source, then the sink, filters each
// line and writes the survivors, then flushes the sink.
//
// Source and sink are closed on every path. The sink is flushed only after
// every line was read and written without error.
func Run(ctx context.Context, cfg *Config) (err error) {
	if cfg.Source == nil {
		return fmt.Errorf("%w: pipeline: source is required", fault.ErrConfig)
	}
	if cfg.Filter == nil {
		return fmt.Errorf("%w: pipeline: filter is required", fault.ErrConfig)
	}
	if cfg.Sink == nil {
		return fmt.Errorf("%w: pipeline: sink is required", fault.ErrConfig)
	}

	r, err := cfg.Source.Open()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	defer r.Close()
	log.WithField("source", r.Name()).Debug("source opened")

	out, err := cfg.Sink()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()
	log.WithField("sink", out.Name()).WithField("filter", cfg.Filter.Name()).Debug("sink opened")

	stats := cfg.Stats
	if stats == nil {
		stats = monitor.NewStats()
	}

	for line, err := range r.Lines() {
		if err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}

		stats.RecordRead()
		if !cfg.Filter.Match(line) {
			stats.RecordSuppressed()
			continue
		}

		if err := out.Write(line); err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}
		stats.RecordWritten()
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	log.WithField("sink", out.Name()).
		WithField("read", stats.Read()).
		WithField("suppressed", stats.Suppressed()).
		Debug("sink committed")

	return nil
}
