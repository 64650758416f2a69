package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusApplied, StatusInterview, StatusOffered, StatusRejected, StatusIgnored} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "applied", "Ghosted", "OFFER"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
