package validate

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)

func checkFormat(format Format, value string) (bool, string) {
	switch format {
	case FormatEmail:
		if !validEmail(value) {
			return false, "value is not a valid email address"
		}
	case FormatURL:
		if !validURL(value) {
			return false, "value is not an absolute URL"
		}
	case FormatPhone:
		if !validPhone(value) {
			return false, "value is not a valid phone number"
		}
	case FormatHTMLBalanced:
		if !balancedHTML(value) {
			return false, "value contains unbalanced HTML tags"
		}
	}
	return true, ""
}

// validEmail accepts the local@domain.tld shape: exactly one @, at least one
// dot inside the domain, and no whitespace anywhere.
func validEmail(value string) bool {
	if value == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return false
	}
	at := strings.Index(value, "@")
	if at <= 0 || at != strings.LastIndex(value, "@") {
		return false
	}
	domain := value[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// validURL requires an absolute URI with both scheme and authority.
func validURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// validPhone allows digits, spaces, hyphens, and parentheses, and requires at
// least 10 digits.
func validPhone(value string) bool {
	if value == "" {
		return false
	}
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 10
}

// balancedHTML compares opening and closing tag counts. Self-closing tags are
// ignored. This is a balance check only, not HTML validation.
func balancedHTML(value string) bool {
	opening, closing := 0, 0
	for _, tag := range htmlTagPattern.FindAllString(value, -1) {
		switch {
		case strings.HasPrefix(tag, "</"):
			closing++
		case strings.HasSuffix(tag, "/>"):
		default:
			opening++
		}
	}
	return opening == closing
}
