package filter

import "strings"

var remoteKeywords = []string{
	"work from home",
	"remote",
	"wfh",
	"work-from-home",
	"hybrid",
}

// RemoteEligible reports whether a location indicates remote or hybrid
// work. Source defaults must be applied before calling; a location that is
// still empty here is never eligible.
func RemoteEligible(location string) bool {
	location = strings.ToLower(location)
	for _, keyword := range remoteKeywords {
		if strings.Contains(location, keyword) {
			return true
		}
	}
	return false
}
