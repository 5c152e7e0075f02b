package app

import (
	"fmt"
	"sort"
)

// Sentinels for absent registry entries. The postcode table and the distance
// matrix are intentionally partial; callers get these instead of errors.
const (
	PostcodeUnknown = "N/A"
	MilesUnknown    = "TBD"
)

// sitePostcodes maps site name to postcode. Immutable at runtime.
var sitePostcodes = map[string]string{
	"Fourfields":  "PE7 3ZT",
	"Beeches":     "PE1 2EH",
	"Newton":      "PE19 6TJ",
	"Elsworth":    "CB23 4JD",
	"Fen Drayton": "CB24 4SL",
	"Pathfinder":  "CB24 1AA",
	"Swavesy":     "CB24 4RN",
	"Shirley":     "CB4 1TF",
	"The Vine":    "CB23 6DY",
	"Thorndown":   "PE27 6SE",
	"UoCP":        "CB3 0QZ",
	"Willingham":  "CB24 5LE",
	"Wyton":       "PE28 2JB",
	"Sawtry":      "PE28 5TQ",
	"Callum":      "PE7 1LF",
	"Toby":        "PE7 3HN",
	"Sam":         "CB6 2SE",
}

// siteDistances holds one-way road miles between sites. Only some origin rows
// are populated; absent pairs resolve to the unknown sentinel.
var siteDistances = map[string]map[string]float64{
	"Fourfields": {
		"Beeches": 5.8, "Newton": 26.3, "Elsworth": 24.8, "Fen Drayton": 23,
		"Pathfinder": 28.1, "Swavesy": 25.9, "Shirley": 33.7, "The Vine": 28.3,
		"Thorndown": 18.9, "UoCP": 30.5, "Willingham": 29.8, "Wyton": 17.2,
		"Sawtry": 7.6, "Callum": 7.4, "Toby": 0.8, "Sam": 31.9,
	},
	"Beeches": {
		"Fourfields": 5.8, "Newton": 33.3, "Elsworth": 33.3, "Fen Drayton": 30.6,
		"Pathfinder": 35.9, "Swavesy": 33.8, "Shirley": 43.2, "The Vine": 36.1,
		"Thorndown": 24.1, "UoCP": 40, "Willingham": 37.6, "Wyton": 22.3,
		"Sawtry": 14.2, "Callum": 7.1, "Toby": 6.9, "Sam": 33.5,
	},
}

// postcodeSites is the reverse of sitePostcodes, built once at startup.
// Duplicate postcodes would make the edit-form reverse lookup ambiguous, so
// registry construction refuses them outright.
var postcodeSites = func() map[string]string {
	rev := make(map[string]string, len(sitePostcodes))
	for site, pc := range sitePostcodes {
		if prev, ok := rev[pc]; ok {
			panic(fmt.Sprintf("site registry: postcode %s shared by %s and %s", pc, prev, site))
		}
		rev[pc] = site
	}
	return rev
}()

// PostcodeOf returns the postcode for a site, or the "N/A" sentinel when the
// site is not in the registry.
func PostcodeOf(site string) string {
	if pc, ok := sitePostcodes[site]; ok {
		return pc
	}
	return PostcodeUnknown
}

// SiteByPostcode recovers a site name from its postcode, or "" when no site
// carries that postcode.
func SiteByPostcode(postcode string) string {
	return postcodeSites[postcode]
}

// DistanceBetween returns the one-way miles from a to b. The second return is
// false when the pair is absent from the table.
func DistanceBetween(a, b string) (float64, bool) {
	row, ok := siteDistances[a]
	if !ok {
		return 0, false
	}
	miles, ok := row[b]
	return miles, ok
}

// SiteNames returns all registered site names in alphabetical order.
func SiteNames() []string {
	names := make([]string, 0, len(sitePostcodes))
	for name := range sitePostcodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
