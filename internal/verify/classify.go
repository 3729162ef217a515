package verify

import (
	"strings"

	"github.com/ppiankov/factdash/internal/factcheck"
	"github.com/ppiankov/factdash/internal/model"
)

// UnknownPublisher is reported when a matching review names no publisher
const UnknownPublisher = "Unknown"

// Rating keywords, checked against the lower-cased textual rating.
// False keywords take precedence over true ones.
var (
	falseKeywords = []string{"false", "misleading", "pants"}
	trueKeywords  = []string{"true", "accurate", "correct", "mostly true"}
)

// ClassifyRating maps a publisher's textual rating to a coarse verdict.
// ok is false when the rating matches neither keyword set.
func ClassifyRating(rating string) (model.Verdict, bool) {
	lower := strings.ToLower(rating)
	if containsAny(lower, falseKeywords) {
		return model.VerdictFalse, true
	}
	if containsAny(lower, trueKeywords) {
		return model.VerdictTrue, true
	}
	return "", false
}

// Classify walks claims and their reviews in response order and returns the first
// review whose rating classifies. Without a match the verdict is Unverified.
func Classify(res *factcheck.SearchResponse) model.VerificationResult {
	if res == nil {
		return model.VerificationResult{Verdict: model.VerdictUnverified}
	}

	for _, claim := range res.Claims {
		for _, review := range claim.ClaimReview {
			verdict, ok := ClassifyRating(review.TextualRating)
			if !ok {
				continue
			}

			publisher := UnknownPublisher
			if review.Publisher != nil && review.Publisher.Name != "" {
				publisher = review.Publisher.Name
			}
			return model.VerificationResult{
				Verdict:   verdict,
				Publisher: publisher,
				Rating:    review.TextualRating,
				URL:       review.URL,
			}
		}
	}

	return model.VerificationResult{Verdict: model.VerdictUnverified}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
