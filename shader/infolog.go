package shader

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// readInfoLog sizes the receiving buffer from the driver's own length query
// and fetches the log into it.
func readInfoLog(length int32, fetch func(buf []byte) int32) string {
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	n := fetch(buf)
	if n >= 0 && int(n) < len(buf) {
		buf = buf[:n]
	}

	return decodeInfoLog(buf)
}

// decodeInfoLog turns raw driver bytes into display text. Invalid UTF-8
// sequences become U+FFFD.
func decodeInfoLog(raw []byte) string {
	raw = bytes.TrimRight(raw, "\x00")

	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}

	return strings.TrimRight(string(decoded), "\r\n")
}
