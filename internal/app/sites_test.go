package app

import "testing"

func TestPostcodeOf(t *testing.T) {
	tests := []struct {
		name string
		site string
		want string
	}{
		{"Known site", "Fourfields", "PE7 3ZT"},
		{"Known site with space", "Fen Drayton", "CB24 4SL"},
		{"Unknown site", "Atlantis", PostcodeUnknown},
		{"Empty site", "", PostcodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostcodeOf(tt.site); got != tt.want {
				t.Errorf("PostcodeOf(%q) = %q, want %q", tt.site, got, tt.want)
			}
		})
	}
}

func TestSiteByPostcodeRoundTrip(t *testing.T) {
	// Every registered site must be recoverable from its postcode; this is
	// what lets the edit form show site names again.
	for _, site := range SiteNames() {
		pc := PostcodeOf(site)
		if got := SiteByPostcode(pc); got != site {
			t.Errorf("SiteByPostcode(%q) = %q, want %q", pc, got, site)
		}
	}

	if got := SiteByPostcode("ZZ99 9ZZ"); got != "" {
		t.Errorf("SiteByPostcode(unknown) = %q, want empty", got)
	}
}

func TestRegistryPostcodesUnique(t *testing.T) {
	seen := map[string]string{}
	for _, site := range SiteNames() {
		pc := PostcodeOf(site)
		if prev, ok := seen[pc]; ok {
			t.Errorf("postcode %s shared by %s and %s", pc, prev, site)
		}
		seen[pc] = site
	}
}

func TestDistanceBetween(t *testing.T) {
	tests := []struct {
		name      string
		from, to  string
		wantMiles float64
		wantOK    bool
	}{
		{"Populated pair", "Fourfields", "Beeches", 5.8, true},
		{"Populated reverse pair", "Beeches", "Fourfields", 5.8, true},
		{"Whole-number miles", "Beeches", "UoCP", 40, true},
		{"Origin row missing", "Newton", "Beeches", 0, false},
		{"Destination missing from row", "Fourfields", "Fourfields", 0, false},
		{"Both unknown", "Atlantis", "ElDorado", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			miles, ok := DistanceBetween(tt.from, tt.to)
			if ok != tt.wantOK || miles != tt.wantMiles {
				t.Errorf("DistanceBetween(%q, %q) = (%v, %v), want (%v, %v)",
					tt.from, tt.to, miles, ok, tt.wantMiles, tt.wantOK)
			}
		})
	}
}
