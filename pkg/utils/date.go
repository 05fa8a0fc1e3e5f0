package utils

import (
	"log"
	"time"
	"unicode/utf8"
)

// GetKSTLocation returns the Asia/Seoul time location.
func GetKSTLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// TimeNowKST returns the current time in Korea Standard Time.
func TimeNowKST() time.Time {
	return time.Now().In(GetKSTLocation())
}

// pubDateLayouts are the timestamp formats the news search API is known to emit.
var pubDateLayouts = []string{
	time.RFC1123Z, // "Mon, 02 Jan 2006 15:04:05 +0900"
	time.RFC1123,
	time.RFC3339,
}

// FormatPubDate converts a provider timestamp to YYYY-MM-DD. Malformed input
// degrades to a 10-character prefix of the raw string and never fails.
func FormatPubDate(raw string) string {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return TruncateRunes(raw, 10)
}

// TruncateRunes shortens s to at most n runes without splitting multibyte characters.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
