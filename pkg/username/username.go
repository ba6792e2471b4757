// Package username derives unique login names from a display name or email.
package username

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	fallback  = "user"
	maxLength = 150
	// maxAttempts bounds the numeric suffix search.
	maxAttempts = 10000
)

// TakenFunc reports whether a candidate username is already in use.
type TakenFunc func(ctx context.Context, candidate string) (bool, error)

// Slugify folds s to lower case ASCII letters and digits.
// Accented letters lose their marks ("José" becomes "jose"); anything else is dropped.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > maxLength {
		out = out[:maxLength]
	}
	return out
}

// Base picks the first of name, the email local part and "user" that slugifies to
// something non-empty.
func Base(name, email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	for _, candidate := range []string{name, local} {
		if slug := Slugify(candidate); slug != "" {
			return slug
		}
	}
	return fallback
}

// Generate returns Base(name, email), appending 1, 2, ... until taken reports
// the candidate as free.
func Generate(ctx context.Context, name, email string, taken TakenFunc) (string, error) {
	base := Base(name, email)
	candidate := base
	for i := 1; i <= maxAttempts; i++ {
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		suffix := strconv.Itoa(i)
		trimmed := base
		if len(trimmed)+len(suffix) > maxLength {
			trimmed = trimmed[:maxLength-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	return "", ErrExhausted
}
