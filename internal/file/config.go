package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/dontillman/piano-roll/internal/processor"
)

// ReadConfig reads the global YAML configuration.
func ReadConfig(fsys fs.FS, configFile string) (*processor.Config, error) {
	f, err := fsys.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %v: %w", configFile, err)
	}
	defer f.Close()
	var config processor.Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode %v: %w", configFile, err)
	}
	return &config, nil
}
