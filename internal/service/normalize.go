package service

import "strings"

// whatsappCountryPrefix is Honduras's calling code; stored WhatsApp numbers
// are local unless they already carry it.
const whatsappCountryPrefix = "504"

// NormalizePhone strips everything except digits and a leading "+", producing
// a tel:-safe dial string. Empty input yields empty output.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "+" {
		return ""
	}
	return s
}

// WhatsAppLink derives a wa.me deep link from a raw WhatsApp number: strip
// non-digits, prepend the country prefix unless already present. Empty digit
// strings produce no link. Idempotent on its own output.
func WhatsAppLink(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, whatsappCountryPrefix) {
		digits = whatsappCountryPrefix + digits
	}
	return "https://wa.me/" + digits
}

// NormalizeURL makes loosely entered website/social values linkable: trims,
// keeps http(s) URLs untouched, prefixes everything else with https://.
// Empty input yields no link.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}
