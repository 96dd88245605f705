package utils

import "testing"

func TestCanonicalStatus(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{"  APPROVED ", StatusApproved, true},
		{"revision", StatusRevisions, true},
		{"Revisions", StatusRevisions, true},
		{"rejected", StatusDisapproved, true},
		{"Disapproved", StatusDisapproved, true},
		{"Archived", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := CanonicalStatus(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CanonicalStatus(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range AllStatuses() {
		if !IsValidStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if IsValidStatus("Open") {
		t.Fatalf("expected Open to be invalid")
	}
}
