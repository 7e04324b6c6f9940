package processor

import (
	"bytes"
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
	"gitlab.com/gomidi/quantizer/lib/quantizer"
)

// quantize runs the file through the quantizer and returns the result.
func quantize(mid *smf.SMF) (*smf.SMF, error) {
	var in, out bytes.Buffer
	_, err := mid.WriteTo(&in)
	if err != nil {
		return nil, fmt.Errorf("could not encode: %w", err)
	}
	err = quantizer.Quantize(&in, &out)
	if err != nil {
		return nil, err
	}
	q, err := smf.ReadFrom(&out)
	if err != nil {
		return nil, fmt.Errorf("could not decode quantized file: %w", err)
	}
	return q, nil
}
