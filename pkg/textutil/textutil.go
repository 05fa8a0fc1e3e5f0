package textutil

import (
	"regexp"
	"strings"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]+>`)
	quotedPattern = regexp.MustCompile(`"([^"]+)"`)

	entityReplacer = strings.NewReplacer(
		"&quot;", `"`,
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&apos;", "'",
	)
)

// Normalize strips markup tags, decodes the five standard HTML entities and
// rewrites double-quoted spans with single quotes so the result embeds safely
// in a JSON document. It is a pure function and never fails.
func Normalize(raw string) string {
	clean := tagPattern.ReplaceAllString(raw, "")
	clean = entityReplacer.Replace(clean)
	// "quoted span" -> 'quoted span'
	clean = quotedPattern.ReplaceAllString(clean, "'$1'")
	// a leftover unmatched quote from an odd count is folded the same way
	clean = strings.ReplaceAll(clean, `"`, "'")
	return strings.TrimSpace(clean)
}
