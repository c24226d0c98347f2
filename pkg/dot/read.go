package dot

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperr "github.com/matzehuels/dotuml/pkg/errors"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// ReadFile reads the DOT file at path and returns its text as UTF-8.
//
// A missing file yields FILE_NOT_FOUND, any other read failure READ_FAILED and
// undecodable content INVALID_ENCODING.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return "", apperr.Wrap(apperr.ErrCodeReadFailed, err, "read %s", path)
	}
	text, err := Decode(data)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeInvalidEncoding, err, "decode %s", path)
	}
	return text, nil
}

// Decode converts raw input to UTF-8 text. A byte order mark selects UTF-8,
// UTF-16BE or UTF-16LE and is removed; without one the input must already be
// valid UTF-8.
func Decode(data []byte) (string, error) {
	utf16 := bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE)
	if !utf16 && !utf8.Valid(data) {
		return "", errors.New("input is not valid UTF-8")
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
