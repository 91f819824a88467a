package adminlist

import (
	"testing"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

const bootstrap = "owner@hennaart.studio"

func TestNewAlwaysContainsBootstrap(t *testing.T) {
	tests := []struct {
		name   string
		stored models.EmailList
	}{
		{name: "no stored record", stored: nil},
		{name: "empty stored list", stored: models.EmailList{}},
		{name: "stored list without bootstrap", stored: models.EmailList{"helper@hennaart.studio"}},
		{name: "stored list with bootstrap duplicated", stored: models.EmailList{bootstrap, "helper@hennaart.studio"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(bootstrap, tt.stored)
			if !l.Contains(bootstrap) {
				t.Fatal("bootstrap address missing from list")
			}
			if emails := l.Emails(); emails[0] != bootstrap {
				t.Fatalf("first email = %q, want bootstrap", emails[0])
			}
		})
	}
}

func TestContainsNormalizes(t *testing.T) {
	l := New("Owner@HennaArt.Studio", models.EmailList{" Helper@Example.com "})

	if !l.Contains("owner@hennaart.studio") {
		t.Fatal("bootstrap lookup should be case-insensitive")
	}
	if !l.Contains("HELPER@example.com") {
		t.Fatal("stored email lookup should be case-insensitive")
	}
	if l.Contains("stranger@example.com") {
		t.Fatal("unknown email reported as admin")
	}
}

func TestAdd(t *testing.T) {
	l := New(bootstrap, nil)

	next, err := l.Add("helper@example.com")
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if !next.Contains("helper@example.com") {
		t.Fatal("added email not in list")
	}
	if l.Contains("helper@example.com") {
		t.Fatal("Add mutated the original list")
	}

	if _, err := next.Add("Helper@Example.com"); !httperr.IsBusiness(err, "duplicate_admin_email") {
		t.Fatalf("duplicate Add() error = %v, want duplicate_admin_email", err)
	}
	if _, err := next.Add("  "); !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("blank Add() error = %v, want invalid_email", err)
	}
}

func TestRemove(t *testing.T) {
	l := New(bootstrap, models.EmailList{"helper@example.com"})

	next, err := l.Remove("helper@example.com")
	if err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}
	if next.Contains("helper@example.com") {
		t.Fatal("removed email still in list")
	}
	if !next.Contains(bootstrap) {
		t.Fatal("bootstrap lost during removal")
	}

	if _, err := l.Remove(bootstrap); !httperr.IsBusiness(err, "bootstrap_admin_immutable") {
		t.Fatalf("Remove(bootstrap) error = %v, want bootstrap_admin_immutable", err)
	}
	if _, err := l.Remove("stranger@example.com"); !httperr.IsBusiness(err, "admin_email_not_found") {
		t.Fatalf("Remove(unknown) error = %v, want admin_email_not_found", err)
	}
}
