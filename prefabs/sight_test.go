package prefabs

import "testing"

func TestEmbeddedSightRule(t *testing.T) {
	rule, err := LoadSightRule("scripts/sight.tengo")
	if err != nil {
		t.Fatalf("LoadSightRule: %v", err)
	}
	cases := []struct {
		distance float64
		want     bool
	}{
		{distance: 0, want: true},
		{distance: 249.9, want: true},
		{distance: 250, want: false},
		{distance: 1000, want: false},
	}
	for _, tc := range cases {
		got, err := rule.Spotted(tc.distance, 250)
		if err != nil {
			t.Fatalf("Spotted(%v): %v", tc.distance, err)
		}
		if got != tc.want {
			t.Fatalf("Spotted(%v)=%v, want %v", tc.distance, got, tc.want)
		}
	}
}

func TestCompileSightRuleErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: "spotted := ("},
		{name: "missing result", src: "seen := distance < sight_range"},
		{name: "not a bool", src: "spotted := distance"},
		{name: "runtime error", src: "spotted := 1 / 0 > 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CompileSightRule(tc.name, []byte(tc.src)); err == nil {
				t.Fatalf("expected compile error")
			}
		})
	}
}

func TestCustomSightRule(t *testing.T) {
	rule, err := CompileSightRule("double", []byte("spotted := distance < sight_range * 2"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	cases := []struct {
		distance float64
		want     bool
	}{
		{distance: 300, want: true},
		{distance: 499, want: true},
		{distance: 500, want: false},
	}
	for _, tc := range cases {
		got, err := rule.Spotted(tc.distance, 250)
		if err != nil || got != tc.want {
			t.Fatalf("Spotted(%v)=%v, %v; want %v", tc.distance, got, err, tc.want)
		}
	}
}
