package stringutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncodeRoundTrip converts a value to its string form and verifies that the
// string survives a byte encode/decode cycle without loss. The second return
// is false when the text is not valid UTF-8.
func EncodeRoundTrip(value any) (string, bool) {
	text := fmt.Sprint(value)

	encoded := []byte(text)
	decoded := string(encoded)
	if decoded != text || !utf8.ValidString(decoded) {
		return "", false
	}

	return decoded, true
}

// JoinAny renders each element with fmt.Sprint and joins the parts with ", ".
func JoinAny(values []any) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = fmt.Sprint(value)
	}

	return strings.Join(parts, ", ")
}

func Empty(vals ...string) bool {
	for _, val := range vals {
		if val == "" {
			return true
		}
	}

	return false
}
