package domain

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf16"
)

const (
	RedactionMarker = "[TOKEN_REDACTED]"

	redactMinLength = 50
)

var (
	sensitiveKeys = []string{"token", "access_token", "authorization", "bearer", "secret", "password"}
	urlSafeBase64 = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Redact returns a copy of v with secret-like values replaced by
// RedactionMarker. v is never modified. Values that are not plain JSON
// shapes are normalized through encoding/json first; values that cannot be
// encoded are replaced entirely.
func Redact(v any) any {
	switch value := v.(type) {
	case nil, bool, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return value
	case string:
		if looksLikeToken(value) {
			return RedactionMarker
		}
		return value
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, field := range value {
			if IsSensitiveKey(key) {
				out[key] = RedactionMarker
				continue
			}
			out[key] = Redact(field)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = Redact(item)
		}
		return out
	default:
		normalized, ok := normalize(value)
		if !ok {
			return RedactionMarker
		}
		return Redact(normalized)
	}
}

// IsSensitiveKey reports whether key contains a sensitive substring, ignoring case.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}

func looksLikeToken(s string) bool {
	if utf16Length(s) <= redactMinLength {
		return false
	}
	return strings.Contains(s, ".") || urlSafeBase64.MatchString(s)
}

// utf16Length counts UTF-16 code units, so astral runes weigh two.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
			continue
		}
		n++
	}
	return n
}

func normalize(v any) (any, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}
