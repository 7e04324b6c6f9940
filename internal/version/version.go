// Package version reports the release this binary was built from.
package version

import (
	"bytes"
	_ "embed"
)

//go:embed version.txt
var versionBytes []byte

// Version returns the version of this code, or "devel" if none is recorded.
func Version() string {
	v := string(bytes.TrimSpace(versionBytes))
	if v == "" {
		return "devel"
	}
	return v
}
