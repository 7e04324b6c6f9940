package processor

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/dontillman/piano-roll/internal/decoder"
)

// Options are the per-input settings, usually read from a YAML file next to
// the MIDI file.
type Options struct {
	// InputFile is the MIDI file to decode, relative to the options file system.
	InputFile string `yaml:"input_file"`

	// InputFileSHA256 is the expected checksum of InputFile. Empty to skip the check.
	InputFileSHA256 string `yaml:"input_file_sha256,omitempty"`

	// BPM forces a fixed tempo, replacing all tempo events.
	BPM float64 `yaml:"bpm,omitempty"`

	// TempoFactor multiplies all tempos.
	TempoFactor float64 `yaml:"tempo_factor,omitempty"`

	// NoteOffFirst moves note ends before note starts at the same tick.
	NoteOffFirst bool `yaml:"note_off_first,omitempty"`

	// Quantize snaps note positions to the grid before decoding.
	Quantize bool `yaml:"quantize,omitempty"`

	// Chronological sorts the notes by start time instead of the order they end in.
	Chronological bool `yaml:"chronological,omitempty"`
}

// Config is the global configuration.
type Config struct {
	// OutputFormat is "yaml" or "text".
	OutputFormat string `yaml:"output_format,omitempty"`

	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level,omitempty"`

	// Defaults apply to all options fields left at zero.
	Defaults Options `yaml:"defaults,omitempty"`
}

// logger is created on use so it follows the level of the default logger.
func logger() *log.Logger {
	return log.WithPrefix("processor")
}

// Process prepares the given MIDI file according to the options and decodes it.
// The input is modified in place.
func Process(mid *smf.SMF, config *Config, options *Options) ([]decoder.Note, error) {
	opts := Merge(config.Defaults, *options)

	if opts.BPM != 0 {
		if opts.BPM < 0 {
			return nil, fmt.Errorf("invalid bpm: %v", opts.BPM)
		}
		err := forceTempo(mid, opts.BPM)
		if err != nil {
			return nil, fmt.Errorf("could not force tempo: %w", err)
		}
	}
	if opts.TempoFactor != 0 && opts.TempoFactor != 1 {
		if opts.TempoFactor < 0 {
			return nil, fmt.Errorf("invalid tempo factor: %v", opts.TempoFactor)
		}
		err := adjustTempo(mid, opts.TempoFactor)
		if err != nil {
			return nil, fmt.Errorf("could not adjust tempo: %w", err)
		}
	}
	if opts.NoteOffFirst {
		sortNoteOffFirst(mid)
	}
	if opts.Quantize {
		quantized, err := quantize(mid)
		if err != nil {
			return nil, fmt.Errorf("could not quantize: %w", err)
		}
		mid = quantized
	}

	if log.GetLevel() <= log.DebugLevel {
		dumpTempo(mid)
	}

	f, err := decoder.FromSMF(mid)
	if err != nil {
		return nil, err
	}
	notes, stats := decoder.DecodeWithStats(f.TimeDivision, f.Tracks)
	logger().Info("decoded", "notes", len(notes), "tracks", stats.Tracks, "events", stats.Events, "tempo_changes", stats.TempoChanges)
	if stats.Dropped > 0 {
		logger().Warn("dropped unterminated notes", "count", stats.Dropped)
	}
	if stats.Restrikes > 0 || stats.OrphanNoteOffs > 0 {
		logger().Debug("unpaired note events", "restrikes", stats.Restrikes, "orphan_note_offs", stats.OrphanNoteOffs)
	}

	if opts.Chronological {
		decoder.SortByStart(notes)
	}
	return notes, nil
}
