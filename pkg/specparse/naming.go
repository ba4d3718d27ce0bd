package specparse

import (
	"strings"
	"unicode"
)

// Slug converts "Position, Rapid Update" to "position-rapid-update".
func Slug(name string) string {
	var result strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && result.Len() > 0 {
				result.WriteByte('-')
			}
			result.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return result.String()
}
