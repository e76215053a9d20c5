package domain

import (
	"encoding/json"
	"testing"
)

func TestClaimUnmarshalString(t *testing.T) {
	t.Parallel()

	var claim Claim
	if err := json.Unmarshal([]byte(`"The vote passed in 2015."`), &claim); err != nil {
		t.Fatalf("unmarshal string claim: %v", err)
	}
	if claim.Text != "The vote passed in 2015." {
		t.Fatalf("unexpected text: %q", claim.Text)
	}
	if claim.Status != ClaimUnverified {
		t.Fatalf("bare claim should be Unverified, got %q", claim.Status)
	}
}

func TestClaimUnmarshalObject(t *testing.T) {
	t.Parallel()

	raw := `{"text": "The vote passed in 2015.", "status": "Single Source", "support": "One wire report"}`
	var claim Claim
	if err := json.Unmarshal([]byte(raw), &claim); err != nil {
		t.Fatalf("unmarshal object claim: %v", err)
	}
	if claim.Status != ClaimSingleSource {
		t.Fatalf("unexpected status: %q", claim.Status)
	}
	if claim.Support != "One wire report" {
		t.Fatalf("unexpected support: %q", claim.Support)
	}
}

func TestClaimUnmarshalUnknownStatus(t *testing.T) {
	t.Parallel()

	var claim Claim
	if err := json.Unmarshal([]byte(`{"text": "x", "status": "Probably True"}`), &claim); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if claim.Status != ClaimUnverified {
		t.Fatalf("unknown status should normalize to Unverified, got %q", claim.Status)
	}
}

func TestClaimUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var claim Claim
	if err := json.Unmarshal([]byte(`42`), &claim); err == nil {
		t.Fatal("expected error for numeric claim")
	}
}
