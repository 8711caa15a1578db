package ids

import "testing"

func TestUniquePrefixLengths(t *testing.T) {
	ids := []string{"2u3iutfd", "2a9k1111", "abc12345"}
	lengths := UniquePrefixLengths(ids)

	if got := lengths["2u3iutfd"]; got != 2 {
		t.Fatalf("expected 2u3iutfd prefix length 2, got %d", got)
	}
	if got := lengths["2a9k1111"]; got != 2 {
		t.Fatalf("expected 2a9k1111 prefix length 2, got %d", got)
	}
	if got := lengths["abc12345"]; got != 1 {
		t.Fatalf("expected abc12345 prefix length 1, got %d", got)
	}
}

func TestUniquePrefixLengthsIsCaseInsensitive(t *testing.T) {
	ids := []string{"Abc", "aBD"}
	lengths := UniquePrefixLengths(ids)

	if got := lengths["abc"]; got != 3 {
		t.Fatalf("expected abc prefix length 3, got %d", got)
	}
	if got := lengths["abd"]; got != 3 {
		t.Fatalf("expected abd prefix length 3, got %d", got)
	}
}

func TestUniquePrefixLengthsSkipsDuplicatesAndEmpty(t *testing.T) {
	ids := []string{"abc", "", "ABC"}
	lengths := UniquePrefixLengths(ids)

	if len(lengths) != 1 {
		t.Fatalf("expected 1 unique ID, got %d", len(lengths))
	}
	if got := lengths["abc"]; got != 1 {
		t.Fatalf("expected abc prefix length 1, got %d", got)
	}
}

func TestNormalizeUniqueIDsKeepsFirstSeenOrder(t *testing.T) {
	got := NormalizeUniqueIDs([]string{"B2", "", "a1", "b2"})
	if len(got) != 2 || got[0] != "b2" || got[1] != "a1" {
		t.Fatalf("expected [b2 a1], got %v", got)
	}
}

func TestMatchPrefixNormalized(t *testing.T) {
	ids := NormalizeUniqueIDs([]string{"abc12345", "abd99999", "xyz", "xyzw"})

	cases := []struct {
		prefix        string
		wantMatch     string
		wantFound     bool
		wantAmbiguous bool
	}{
		{prefix: "abc", wantMatch: "abc12345", wantFound: true},
		{prefix: "ABD", wantMatch: "abd99999", wantFound: true},
		{prefix: "ab", wantFound: true, wantAmbiguous: true},
		{prefix: "xyz", wantMatch: "xyz", wantFound: true},
		{prefix: "q", wantFound: false},
	}

	for _, tc := range cases {
		match, found, ambiguous := MatchPrefixNormalized(ids, tc.prefix)
		if match != tc.wantMatch || found != tc.wantFound || ambiguous != tc.wantAmbiguous {
			t.Errorf("MatchPrefixNormalized(%q) = (%q, %v, %v), want (%q, %v, %v)",
				tc.prefix, match, found, ambiguous, tc.wantMatch, tc.wantFound, tc.wantAmbiguous)
		}
	}
}
