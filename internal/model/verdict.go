package model

// Verdict is the coarse classification assigned after a fact-check lookup
type Verdict string

const (
	VerdictTrue          Verdict = "True"
	VerdictFalse         Verdict = "False"
	VerdictUnverified    Verdict = "Unverified"
	VerdictAPIError      Verdict = "API Error"
	VerdictAPIKeyMissing Verdict = "API Key Missing"
)

// VerificationResult is the outcome of cross-referencing one statement
type VerificationResult struct {
	Verdict   Verdict `json:"verdict"`
	Publisher string  `json:"publisher,omitempty"` // Fact-check publisher name
	Rating    string  `json:"rating,omitempty"`    // Textual rating, or the error text for API Error
	URL       string  `json:"url,omitempty"`       // Link to the matching review
}

// VerifiedClaim is a claim row augmented with verification columns
type VerifiedClaim struct {
	ClaimRecord
	Result VerificationResult `json:"result"`
}

// VerificationColumns are appended after ClaimColumns in verified exports
var VerificationColumns = []string{"google_verdict", "publisher", "google_rating", "fact_url"}

// VerdictShare is one bar of the verdict distribution
type VerdictShare struct {
	Verdict Verdict `json:"verdict"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // Rounded to one decimal
}
