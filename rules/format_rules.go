package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validation"
)

// Email validates that a string is a valid email address using RFC 5322.
func Email(path validation.PropertyPath) validation.Rule[string] {
	return validation.FromPredicate(path, "must be a valid email address", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return false
		}

		// Additional validation for typical web use
		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 {
			return false
		}

		localPart := parts[0]
		domain := parts[1]

		if localPart == "" {
			return false
		}

		// Domain must contain at least one dot and cannot start/end with dot
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false
		}

		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}

		return true
	}, validation.WithCode(CodeEmail))
}

// URL validates that a string is a valid URL with a scheme and host.
func URL(path validation.PropertyPath) validation.Rule[string] {
	return validation.FromPredicate(path, "must be a valid URL", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}

		return u.Scheme != "" && u.Host != ""
	}, validation.WithCode(CodeURL))
}

// Matches validates that a string matches the given pattern. The pattern is
// compiled once at rule-construction time.
func Matches(path validation.PropertyPath, pattern *regexp.Regexp) validation.Rule[string] {
	return validation.FromPredicate(path, "must match the required format", func(value string) bool {
		return pattern.MatchString(value)
	}, validation.WithCode(CodePattern))
}
