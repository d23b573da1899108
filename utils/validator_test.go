package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Fatal("expected short password to be rejected")
	}
	if ok, msg := ValidatePassword("longenough"); !ok {
		t.Fatalf("expected password to pass, got %q", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("unexpected sanitized value %q", got)
	}
}
