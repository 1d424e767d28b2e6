package models

import "strings"

// Regions is the fixed set of coarse geographic groupings served by the
// REST Countries region endpoint. "All" is not a region: the sentinel is
// handled by the countries service as "no filter".
var Regions = []string{
	"Africa",
	"Americas",
	"Antarctic",
	"Asia",
	"Europe",
	"Oceania",
}

// IsRegion reports whether name refers to a known region, matching
// case-insensitively. The second return value is the canonical spelling.
func IsRegion(name string) (string, bool) {
	for _, r := range Regions {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}
