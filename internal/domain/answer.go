package domain

import "strings"

// VariantSeparator delimits acceptable answers inside one field
const VariantSeparator = ";"

// Normalize trims, lowercases and collapses whitespace runs to single spaces
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ParseVariants splits a stored field into normalized, non-empty variants
func ParseVariants(field string) []string {
	parts := strings.Split(field, VariantSeparator)
	variants := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := Normalize(p); v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}

// CanonicalAnswer returns the first listed variant as authored (trimmed only).
// A field without any non-empty variant is returned trimmed.
func CanonicalAnswer(field string) string {
	for _, p := range strings.Split(field, VariantSeparator) {
		if v := strings.TrimSpace(p); v != "" {
			return v
		}
	}
	return strings.TrimSpace(field)
}

// MatchesAnswer reports whether the already normalized input equals one of the variants
func MatchesAnswer(normalizedInput, field string) bool {
	for _, v := range ParseVariants(field) {
		if v == normalizedInput {
			return true
		}
	}
	return false
}
