package domain

// Reason classifies why a candidate URL was rejected. The zero value means
// the candidate was accepted.
//
// Reason implements error so it can be wrapped by semantic errors and matched
// with errors.Is.
type Reason string

const (
	// ReasonEmpty means the candidate was empty after trimming whitespace.
	ReasonEmpty Reason = "EMPTY"
	// ReasonMissingScheme means a scheme or an authority could not be found.
	ReasonMissingScheme Reason = "MISSING_SCHEME"
	// ReasonUnsupportedScheme means the scheme is neither http nor https.
	ReasonUnsupportedScheme Reason = "UNSUPPORTED_SCHEME"
	// ReasonMissingDomain means the authority has no dot-separated domain.
	ReasonMissingDomain Reason = "MISSING_DOMAIN"
	// ReasonMalformedDomainLabel means a domain label is empty or starts or ends with a hyphen.
	ReasonMalformedDomainLabel Reason = "MALFORMED_DOMAIN_LABEL"
)

var reasonMessages = map[Reason]string{ //nolint: gochecknoglobals
	ReasonEmpty:                "please enter a URL",
	ReasonMissingScheme:        "URL must start with http:// or https:// and include a host",
	ReasonUnsupportedScheme:    "only http and https URLs are supported",
	ReasonMissingDomain:        "URL host must be a domain name such as example.com",
	ReasonMalformedDomainLabel: "URL host contains an empty label or a label starting or ending with '-'",
}

// Error implements the error interface with a message suitable for end users.
func (r Reason) Error() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}

	return "invalid URL"
}

// String returns the reason code.
func (r Reason) String() string { return string(r) }

// ValidationResult is the outcome of validating a candidate URL.
type ValidationResult struct {
	// URL is the candidate with surrounding whitespace removed.
	URL string
	// Reason is empty for an accepted candidate.
	Reason Reason
}

// Valid reports whether the candidate was accepted.
func (r ValidationResult) Valid() bool { return r.Reason == "" }

// Err returns the rejection reason as an error, or nil for a valid result.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}

	return r.Reason
}
