package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinSlugLength and MaxSlugLength bound tenant subdomain slugs
	MinSlugLength = 3
	MaxSlugLength = 30
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// reservedSlugs can never be claimed as tenant subdomains; they collide
// with platform hosts or generic infrastructure names.
var reservedSlugs = map[string]struct{}{
	"www": {}, "api": {}, "admin": {}, "app": {}, "mail": {}, "ftp": {},
	"blog": {}, "shop": {}, "store": {}, "support": {}, "help": {},
	"docs": {}, "dev": {}, "test": {}, "staging": {}, "prod": {},
	"production": {}, "dashboard": {}, "panel": {}, "login": {},
	"register": {}, "auth": {}, "oauth": {}, "cdn": {}, "static": {},
	"assets": {}, "images": {}, "files": {}, "uploads": {}, "download": {},
	"secure": {}, "ssl": {}, "vpn": {}, "proxy": {}, "quentinhas": {},
	"quentinha": {}, "delivery": {}, "food": {}, "restaurant": {},
}

// ValidateSlug checks that a slug is usable as a tenant subdomain:
// 3-30 chars, lowercase alphanumerics and inner hyphens, not reserved.
// The returned error message is safe to show to the user.
func ValidateSlug(slug string) error {
	cleaned := strings.ToLower(strings.TrimSpace(slug))
	if cleaned == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	if len(cleaned) < MinSlugLength || len(cleaned) > MaxSlugLength {
		return fmt.Errorf("slug must be between %d and %d characters", MinSlugLength, MaxSlugLength)
	}
	if strings.HasPrefix(cleaned, "-") || strings.HasSuffix(cleaned, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}
	if !slugPattern.MatchString(cleaned) {
		return fmt.Errorf("slug may only contain lowercase letters, numbers and hyphens")
	}
	if _, reserved := reservedSlugs[cleaned]; reserved {
		return fmt.Errorf("this name is not available")
	}
	return nil
}

// NormalizeSlug lowercases and trims a user-supplied slug
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// SlugFromName derives a slug candidate from a restaurant name: lowercase,
// accents stripped, spaces collapsed to single hyphens.
func SlugFromName(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = stripAccents(base)

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// SuggestSlugs generates up to eight slug suggestions from a restaurant
// name: the base name, suffixed variants, numbered variants, and an
// abbreviation for long multi-word names.
func SuggestSlugs(name string) []string {
	base := SlugFromName(name)
	if base == "" {
		return nil
	}

	var suggestions []string
	if len(base) >= MinSlugLength {
		suggestions = append(suggestions, base)
	}

	for _, suffix := range []string{"delivery", "food", "express", "gourmet", "casa", "restaurante"} {
		candidate := base + "-" + suffix
		if len(candidate) <= MaxSlugLength {
			suggestions = append(suggestions, candidate)
		}
	}

	for i := 1; i <= 5; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if len(candidate) <= MaxSlugLength {
			suggestions = append(suggestions, candidate)
		}
	}

	if len(base) > 15 {
		words := strings.Split(base, "-")
		if len(words) > 1 {
			var abbr strings.Builder
			for _, word := range words {
				abbr.WriteByte(word[0])
			}
			if abbr.Len() >= MinSlugLength {
				suggestions = append(suggestions, abbr.String(), abbr.String()+"-delivery")
			}
		}
	}

	if len(suggestions) > 8 {
		suggestions = suggestions[:8]
	}
	return suggestions
}

// stripAccents maps the accented characters common in Portuguese names to
// their ASCII equivalents.
func stripAccents(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a", "ä", "a",
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"í", "i", "ì", "i", "î", "i", "ï", "i",
		"ó", "o", "ò", "o", "õ", "o", "ô", "o", "ö", "o",
		"ú", "u", "ù", "u", "û", "u", "ü", "u",
		"ç", "c", "ñ", "n",
	)
	return replacer.Replace(s)
}
