package parser

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// encodingCandidate is one entry in the fixed trial order. decode returns
// the text as UTF-8 or an error when the bytes are malformed for the
// encoding.
type encodingCandidate struct {
	name   string
	decode func(data []byte) (string, error)
}

// encodingTrialOrder is the fixed priority order for decoding input bytes.
// The first encoding whose decode AND subsequent parse succeed wins.
var encodingTrialOrder = []encodingCandidate{
	{name: "UTF-8", decode: decodeUTF8},
	{name: "UTF-16", decode: decodeUTF16},
	{name: "Windows-1252", decode: decodeWindows1252},
	{name: "ISO-8859-1", decode: decodeLatin1},
}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// decodeUTF8 validates the bytes as UTF-8, stripping a leading BOM.
func decodeUTF8(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == bomUTF8[0] && data[1] == bomUTF8[1] && data[2] == bomUTF8[2] {
		data = data[3:]
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8 byte sequence")
	}
	return string(data), nil
}

// decodeUTF16 decodes UTF-16 text. A BOM is required so the byte order is
// unambiguous; input without one is rejected and the trial moves on.
func decodeUTF16(data []byte) (string, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("input too short for UTF-16")
	}
	if len(data)%2 != 0 {
		return "", fmt.Errorf("odd byte length for UTF-16")
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("UTF-16 decode: %w", err)
	}
	return string(out), nil
}

// decodeWindows1252 decodes Windows-1252 text. Every byte maps to some
// code point, so this never fails; it sits late in the trial order and a
// downstream parse failure moves the trial on.
func decodeWindows1252(data []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodeLatin1 decodes ISO-8859-1 text. Total like Windows-1252; it is the
// last resort.
func decodeLatin1(data []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
