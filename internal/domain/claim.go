package domain

import (
	"encoding/json"
	"fmt"
)

// VerificationStatus is the comparison stage's verdict on a factual claim.
type VerificationStatus string

const (
	ClaimVerified     VerificationStatus = "Verified"
	ClaimDisputed     VerificationStatus = "Disputed"
	ClaimSingleSource VerificationStatus = "Single Source"
	ClaimUnverified   VerificationStatus = "Unverified"
)

// Claim is a factual assertion extracted from the article. Upstream stages
// emit either a bare string or a structured object with verification fields;
// both decode into this richer form, a bare string becoming an Unverified
// claim with empty support.
type Claim struct {
	Text    string             `json:"text"`
	Status  VerificationStatus `json:"status"`
	Support string             `json:"support,omitempty"`
}

// NewRawClaim wraps a bare claim string in the structured form.
func NewRawClaim(text string) Claim {
	return Claim{Text: text, Status: ClaimUnverified}
}

// UnmarshalJSON accepts both claim shapes.
func (c *Claim) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = NewRawClaim(text)
		return nil
	}

	var obj struct {
		Text    string `json:"text"`
		Claim   string `json:"claim"`
		Status  string `json:"status"`
		Support string `json:"support"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("claim is neither string nor object: %w", err)
	}

	text = obj.Text
	if text == "" {
		text = obj.Claim
	}

	*c = Claim{
		Text:    text,
		Status:  normalizeStatus(obj.Status),
		Support: obj.Support,
	}
	return nil
}

func normalizeStatus(raw string) VerificationStatus {
	switch VerificationStatus(raw) {
	case ClaimVerified, ClaimDisputed, ClaimSingleSource:
		return VerificationStatus(raw)
	default:
		return ClaimUnverified
	}
}
