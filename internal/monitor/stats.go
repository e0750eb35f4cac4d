// Package monitor provides statistics collection for a pipeline run.
package monitor

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats counts lines as they move through the pipeline.
// It is not safe for concurrent use; a run is single-threaded.
type Stats struct {
	readLines       uint64
	suppressedLines uint64
	writtenLines    uint64
	startTime       time.Time
	now             func() time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return newStats(time.Now)
}

func newStats(now func() time.Time) *Stats {
	return &Stats{
		startTime: now(),
		now:       now,
	}
}

// RecordRead increments the count of lines produced by the source.
func (s *Stats) RecordRead() {
	s.readLines++
}

// RecordSuppressed increments the count of lines dropped by the filter.
func (s *Stats) RecordSuppressed() {
	s.suppressedLines++
}

// RecordWritten increments the count of lines handed to the sink.
func (s *Stats) RecordWritten() {
	s.writtenLines++
}

// Read returns the number of lines read.
func (s *Stats) Read() uint64 {
	return s.readLines
}

// Suppressed returns the number of suppressed lines.
func (s *Stats) Suppressed() uint64 {
	return s.suppressedLines
}

// Written returns the number of lines written.
func (s *Stats) Written() uint64 {
	return s.writtenLines
}

// Elapsed returns the time since collection started.
func (s *Stats) Elapsed() time.Duration {
	return s.now().Sub(s.startTime)
}

// Rate returns lines read per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Read()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	read := s.Read()
	suppressed := s.Suppressed()

	suppressRate := float64(0)
	if read > 0 {
		suppressRate = float64(suppressed) / float64(read) * 100
	}

	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Lines read:       %s\n"+
			"  Lines suppressed: %s (%.1f%%)\n"+
			"  Lines written:    %s\n"+
			"  Duration:         %s\n"+
			"  Throughput:       %s lines/s\n"+
			"─────────────",
		humanize.Comma(int64(read)),
		humanize.Comma(int64(suppressed)), suppressRate,
		humanize.Comma(int64(s.Written())),
		s.Elapsed().Round(time.Millisecond),
		humanize.Comma(int64(s.Rate())),
	)
}
