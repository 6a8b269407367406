package services

import "strings"

// ExtractSubdomain maps a request hostname to a tenant slug. It returns
// ok=false for the main/marketing domain and for anything that does not
// look like a tenant subdomain. It never fails on malformed input.
//
//	ExtractSubdomain("acme.quentinhas.com", "quentinhas.com")  -> "acme", true
//	ExtractSubdomain("www.quentinhas.com", "quentinhas.com")   -> "", false
//	ExtractSubdomain("acme.localhost:5173", "localhost")       -> "acme", true
func ExtractSubdomain(hostname, baseDomain string) (string, bool) {
	if hostname == "" || baseDomain == "" {
		return "", false
	}

	// Drop the port if present
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}

	cleaned := strings.TrimPrefix(strings.ToLower(hostname), "www.")
	baseDomain = strings.ToLower(baseDomain)

	// Main domain, with or without www
	if cleaned == baseDomain {
		return "", false
	}

	if !strings.HasSuffix(cleaned, "."+baseDomain) {
		return "", false
	}

	parts := strings.Split(cleaned, ".")

	// In development the base domain is bare "localhost", so tenant hosts
	// have only two labels: <slug>.localhost
	minLabels := 3
	if !strings.Contains(baseDomain, ".") {
		minLabels = 2
	}
	if len(parts) < minLabels {
		return "", false
	}

	slug := parts[0]
	if slug == "" {
		return "", false
	}
	return slug, true
}
