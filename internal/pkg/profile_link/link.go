// Package profile_link turns the raw contact handle stored on an order into a
// clickable Facebook link. The stored value is never rewritten.
package profile_link

import (
	"regexp"
	"strings"
)

const facebookBase = "https://www.facebook.com/"

var (
	httpScheme     = regexp.MustCompile(`(?i)^https?://`)
	wwwPrefix      = regexp.MustCompile(`(?i)^www\.`)
	fbDeepLink     = regexp.MustCompile(`(?i)^fb://`)
	facebookDomain = regexp.MustCompile(`(?i)facebook\.com`)
)

func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return ""
	case httpScheme.MatchString(s), fbDeepLink.MatchString(s):
		return s
	case wwwPrefix.MatchString(s):
		return "https://" + s
	case strings.HasPrefix(s, "@"):
		return facebookBase + s[1:]
	case facebookDomain.MatchString(s):
		return "https://" + strings.TrimLeft(s, "/")
	default:
		return facebookBase + escapeComponent(s)
	}
}

const upperHex = "0123456789ABCDEF"

// escapeComponent percent-encodes every UTF-8 byte outside the URI component
// unreserved set A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
