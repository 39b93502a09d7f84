package utils

import "strings"

// operator name fragments mapped to provider operator codes. Matching is
// contains-based because callers submit free-text operator names ("Airtel
// Prepaid", "Vi - Vodafone Idea").
var operatorFragments = []struct {
	fragment string
	code     string
}{
	{"AIRTEL", "ATL"},
	{"JIO", "JIO"},
	{"BSNL", "BSN"},
	{"VODAFONE", "VOD"},
	{"IDEA", "VOD"},
	{"VI", "VOD"},
}

// OperatorCode canonicalizes a free-text operator name to the provider's
// three-letter code. Unknown operators pass through uppercased; the provider
// rejects codes it does not know, so guessing is worse than forwarding.
func OperatorCode(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	for _, op := range operatorFragments {
		if strings.Contains(n, op.fragment) {
			return op.code
		}
	}
	return n
}

// bill categories mapped to provider BBPS service type codes
var categoryServiceTypes = map[string]string{
	"electricity": "EB",
	"gas":         "GP",
	"water":       "WT",
	"fastag":      "FT",
	"insurance":   "IN",
	"broadband":   "BB",
	"landline":    "LL",
}

// ServiceTypeForCategory maps a bill category to the provider service type
// code. Returns the empty string for unknown categories so callers can apply
// their configured default.
func ServiceTypeForCategory(category string) string {
	return categoryServiceTypes[strings.ToLower(strings.TrimSpace(category))]
}
