package pcre

import "github.com/regolabs/pcrekit/bindings"

// Version returns the underlying engine's version string.
func Version() string {
	return bindings.Version()
}
