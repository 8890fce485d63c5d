package fluentcheck

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322
// parsing plus the stricter domain checks typical web forms expect.
func ValidEmail(field, value string) Rule {
	return RuleFunc(func() Result {
		fail := func() Result {
			return Failuref("%s must be a valid email address", field)
		}

		if strings.TrimSpace(value) == "" {
			return fail()
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return fail()
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 || parts[0] == "" {
			return fail()
		}

		// Domain must contain a dot and no empty labels.
		domain := parts[1]
		if !strings.Contains(domain, ".") {
			return fail()
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return fail()
			}
		}

		return Success()
	})
}

// ValidURL validates that a string parses as an absolute URL whose scheme is
// in the allowed list. With no schemes given, http and https are allowed.
func ValidURL(field, value string, schemes ...string) Rule {
	return RuleFunc(func() Result {
		if len(schemes) == 0 {
			schemes = []string{"http", "https"}
		}

		u, err := url.Parse(value)
		if err != nil || u.Host == "" || !slices.Contains(schemes, u.Scheme) {
			return Failuref("%s must be a valid URL", field)
		}
		return Success()
	})
}
