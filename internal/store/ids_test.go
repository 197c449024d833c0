package store

import "testing"

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestNewID(t *testing.T) {
	cases := []struct {
		name     string
		existing map[string]struct{}
		want     string
	}{
		{"empty set", idSet(), "s1"},
		{"sequential", idSet("s1", "s2"), "s3"},
		{"fills gap", idSet("s1", "s3"), "s2"},
		{"ignores other prefixes", idSet("t1", "t2"), "s1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := newID("s", tc.existing); got != tc.want {
				t.Fatalf("newID(%q) = %q, want %q", "s", got, tc.want)
			}
		})
	}
}
