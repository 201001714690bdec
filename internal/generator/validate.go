package generator

import (
	"net/url"
	"qrgen/pkg/domain"
	"strings"
)

// Validate decides whether candidate can be turned into a QR code. Rules are
// applied in order and the first failing rule determines the reason:
//   - empty after trimming whitespace
//   - no scheme or no authority
//   - scheme other than http or https (case-insensitive)
//   - authority without a dot
//   - a dot-separated authority label that is empty or starts or ends with '-'
//
// The authority includes the port, so "example.com:8080" splits into
// "example" and "com:8080". This is a heuristic, not RFC hostname validation.
func Validate(candidate string) domain.ValidationResult {
	trimmed := strings.TrimSpace(candidate)
	res := domain.ValidationResult{URL: trimmed}

	if trimmed == "" {
		res.Reason = domain.ReasonEmpty

		return res
	}

	scheme, authority := splitURL(trimmed)
	if scheme == "" || authority == "" {
		res.Reason = domain.ReasonMissingScheme

		return res
	}

	switch strings.ToLower(scheme) {
	case "http", "https":
	default:
		res.Reason = domain.ReasonUnsupportedScheme

		return res
	}

	if !strings.Contains(authority, ".") {
		res.Reason = domain.ReasonMissingDomain

		return res
	}

	for _, label := range strings.Split(authority, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			res.Reason = domain.ReasonMalformedDomainLabel

			return res
		}
	}

	return res
}

// splitURL returns the scheme and the authority (host and port, without
// userinfo) of raw. When net/url rejects raw, typically because of spaces,
// bad escapes or a non-numeric port in the host, the parts are taken
// lexically instead: the scheme ends at the first ':' and the authority
// follows "//" up to the first '/', '?' or '#'.
func splitURL(raw string) (scheme, authority string) {
	if u, err := url.Parse(raw); err == nil {
		return u.Scheme, u.Host
	}

	scheme, rest, ok := strings.Cut(raw, ":")
	if !ok || !validScheme(scheme) {
		return "", ""
	}

	rest, ok = strings.CutPrefix(rest, "//")
	if !ok {
		return scheme, ""
	}

	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}

	return scheme, rest
}

// validScheme reports whether s is a letter followed by letters, digits,
// '+', '-' or '.'.
func validScheme(s string) bool {
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return s != ""
}
