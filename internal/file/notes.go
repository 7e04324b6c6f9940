package file

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dontillman/piano-roll/internal/decoder"
)

// WriteNotes writes the notes in the given format, "yaml", "text" or "freq".
// An empty format means "yaml". The "freq" format is "text" with the frequency
// in Hz as a fifth column.
func WriteNotes(w io.Writer, notes []decoder.Note, format string) error {
	switch format {
	case "", "yaml":
		if notes == nil {
			notes = []decoder.Note{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(notes)
		if err != nil {
			return fmt.Errorf("could not encode notes: %w", err)
		}
		return enc.Close()
	case "text":
		bw := bufio.NewWriter(w)
		for _, n := range notes {
			fmt.Fprintf(bw, "%.6f\t%.6f\t%d\t%d\n", n.Start, n.Stop, n.Note, n.Level)
		}
		return bw.Flush()
	case "freq":
		bw := bufio.NewWriter(w)
		for _, n := range notes {
			fmt.Fprintf(bw, "%.6f\t%.6f\t%d\t%d\t%.2f\n", n.Start, n.Stop, n.Note, n.Level, n.Frequency())
		}
		return bw.Flush()
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}
