// File: pkg/collect/binary.go
package collect

import (
	"errors"
	"unicode/utf8"
)

// errNotText marks content that is not valid UTF-8 and is therefore treated
// as a binary file.
var errNotText = errors.New("stream did not contain valid UTF-8")

// decodeText returns data as text, or errNotText when it is not valid UTF-8.
// NUL bytes are valid UTF-8 and do not make a file binary.
func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errNotText
	}
	return string(data), nil
}
