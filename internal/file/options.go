package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dontillman/piano-roll/internal/processor"
)

// ReadOptions reads the YAML options of one input. An empty file yields zero options.
func ReadOptions(fsys fs.FS, optionsFile string) (*processor.Options, error) {
	f, err := fsys.Open(optionsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %v: %w", optionsFile, err)
	}
	defer f.Close()
	var options processor.Options
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&options)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode %v: %w", optionsFile, err)
	}
	return &options, nil
}

// WriteOptions replaces the options file.
func WriteOptions(optionsFile string, options *processor.Options) (err error) {
	f, err := os.Create(optionsFile)
	if err != nil {
		return fmt.Errorf("could not recreate %v: %w", optionsFile, err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2) // Match yq.
	err = enc.Encode(options)
	if err != nil {
		return fmt.Errorf("could not encode %v: %w", optionsFile, err)
	}
	return enc.Close()
}
