package generator

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Canonicalize lower-cases the scheme and host of a validated URL and drops
// default ports (http:80, https:443). Path, query and fragment are left alone.
func Canonicalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)

	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			// keep IPv6 literals bracketed
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	return u.String(), nil
}
