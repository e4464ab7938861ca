package utils

import "testing"

func TestGetEmailDomain(t *testing.T) {
	t.Parallel()

	if err := GetEmailDomain("ann@gmail.com"); err != nil {
		t.Fatalf("expected plain address to pass, got %v", err)
	}
	if err := GetEmailDomain("ann+spam@gmail.com"); err == nil {
		t.Fatalf("expected aliased address to be rejected")
	}
	if err := GetEmailDomain("no-at-sign"); err == nil {
		t.Fatalf("expected malformed address to be rejected")
	}
	if err := GetEmailDomain("trailing@"); err == nil {
		t.Fatalf("expected empty domain to be rejected")
	}
}
