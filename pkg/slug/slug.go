package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly handle from the given name.
// Spanish characters are transliterated to ASCII equivalents since most
// artisan product names in the catalog are Spanish.
//
// Examples:
//   - "Jarrón de Barro" → "jarron-de-barro"
//   - "Cesta Tejida Añil" → "cesta-tejida-anil"
//   - "Hello   World!" → "hello-world"
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
		"ñ", "n", "ü", "u",
	)
	s = replacer.Replace(s)

	// Replace any non-alphanumeric characters with hyphens
	s = slugRegexp.ReplaceAllString(s, "-")

	// Trim leading and trailing hyphens
	s = strings.Trim(s, "-")

	// Collapse consecutive hyphens into single hyphens
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	return s
}
