// Package inn holds taxpayer identification number (ИНН) rules and lookup results.
package inn

import "strings"

// IsValid reports whether candidate looks like an ИНН: exactly 10 or 12
// decimal digits. The checksum is not verified.
func IsValid(candidate string) bool {
	if strings.TrimSpace(candidate) == "" {
		return false
	}
	if len(candidate) != 10 && len(candidate) != 12 {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}
	return true
}

// Unique drops repeated candidates, keeping the first occurrence of each
func Unique(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
