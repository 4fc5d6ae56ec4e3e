package services

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Light Jets":       "light-jets",
		"  Turboprop  ":    "turboprop",
		"Single Engine PISTON": "single-engine-piston",
	}
	for name, want := range cases {
		if got := Slugify(name); got != want {
			t.Errorf("Slugify(%q) = %q, expected %q", name, got, want)
		}
	}
}
