package file

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io/fs"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/dontillman/piano-roll/internal/decoder"
	"github.com/dontillman/piano-roll/internal/processor"
)

// Process reads the input file named by the options and decodes it into notes.
//
// If the options carry a checksum, the input file must match it. Otherwise the
// checksum of the input file is stored in the options, so the caller can write
// them back.
func Process(fsys fs.FS, config *processor.Config, options *processor.Options, passphrase Passphrase) ([]decoder.Note, error) {
	inputFile := processor.Merge(config.Defaults, *options).InputFile
	if inputFile == "" {
		return nil, fmt.Errorf("no input file given")
	}

	inBytes, err := fs.ReadFile(fsys, inputFile)
	if err != nil {
		return nil, fmt.Errorf("could not read %v: %w", inputFile, err)
	}

	sum := fmt.Sprintf("%x", sha256.Sum256(inBytes))

	if options.InputFileSHA256 != "" && options.InputFileSHA256 != sum {
		return nil, fmt.Errorf("mismatching checksum of %v: got %v, want %v", inputFile, sum, options.InputFileSHA256)
	}

	data, err := decodeInput(inputFile, inBytes, passphrase)
	if err != nil {
		return nil, fmt.Errorf("could not decode %v: %w", inputFile, err)
	}

	in, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", inputFile, err)
	}

	notes, err := processor.Process(in, config, options)
	if err != nil {
		return nil, fmt.Errorf("failed to process %v: %w", inputFile, err)
	}

	if options.InputFileSHA256 == "" {
		options.InputFileSHA256 = sum
	}

	return notes, nil
}
