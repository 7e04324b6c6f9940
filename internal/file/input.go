package file

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"

	"filippo.io/age"
)

// Passphrase returns the passphrase for age encrypted input files.
type Passphrase func() (string, error)

// ErrNoPassphrase is returned for encrypted input when no passphrase source is available.
var ErrNoPassphrase = errors.New("input is encrypted but no passphrase was given")

// byteaPrefix starts a binary value in PostgreSQL bytea hex format.
var byteaPrefix = []byte(`\x`)

// decodeInput turns the raw bytes of an input file into MIDI data. Files named
// *.age are decrypted with a scrypt passphrase first; data in bytea hex format
// is decoded.
func decodeInput(name string, data []byte, passphrase Passphrase) ([]byte, error) {
	if path.Ext(name) == ".age" {
		if passphrase == nil {
			return nil, ErrNoPassphrase
		}
		pw, err := passphrase()
		if err != nil {
			return nil, fmt.Errorf("could not get passphrase: %w", err)
		}
		data, err = decrypt(data, pw)
		if err != nil {
			return nil, err
		}
	}
	if bytes.HasPrefix(data, byteaPrefix) {
		return decodeBytea(data)
	}
	return data, nil
}

func decrypt(data []byte, pw string) ([]byte, error) {
	id, err := age.NewScryptIdentity(pw)
	if err != nil {
		return nil, fmt.Errorf("could not build scrypt identity: %w", err)
	}
	r, err := age.Decrypt(bytes.NewReader(data), id)
	if err != nil {
		return nil, fmt.Errorf("could not start decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not finish decrypting: %w", err)
	}
	return plaintext, nil
}

// decodeBytea decodes `\x` followed by hex digits.
func decodeBytea(data []byte) ([]byte, error) {
	digits := bytes.TrimSpace(bytes.TrimPrefix(data, byteaPrefix))
	out := make([]byte, hex.DecodedLen(len(digits)))
	n, err := hex.Decode(out, digits)
	if err != nil {
		return nil, fmt.Errorf("could not decode bytea hex: %w", err)
	}
	return out[:n], nil
}

// EncodeBytea encodes binary data in PostgreSQL bytea hex format.
func EncodeBytea(data []byte) []byte {
	out := make([]byte, len(byteaPrefix)+hex.EncodedLen(len(data)))
	copy(out, byteaPrefix)
	hex.Encode(out[len(byteaPrefix):], data)
	return out
}
