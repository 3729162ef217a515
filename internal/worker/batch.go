package worker

import (
	"context"

	"github.com/ppiankov/factdash/internal/logger"
	"github.com/ppiankov/factdash/internal/model"
)

// StatementVerifier produces a verdict for one statement
type StatementVerifier interface {
	Verify(ctx context.Context, statement string) model.VerificationResult
}

// ProgressFunc receives the number of rows verified so far out of total
type ProgressFunc func(done, total int)

// BatchVerifier verifies a claim table one row at a time, in row order
type BatchVerifier struct {
	verifier StatementVerifier
}

// NewBatchVerifier creates a batch driver around verifier
func NewBatchVerifier(verifier StatementVerifier) *BatchVerifier {
	return &BatchVerifier{verifier: verifier}
}

// VerifyAll returns claims augmented with their verification results.
// Once ctx is done the remaining rows are marked API Error with the context error.
func (b *BatchVerifier) VerifyAll(ctx context.Context, claims []model.ClaimRecord, progress ProgressFunc) []model.VerifiedClaim {
	out := make([]model.VerifiedClaim, len(claims))
	total := len(claims)

	for i, claim := range claims {
		var result model.VerificationResult
		if err := ctx.Err(); err != nil {
			result = model.VerificationResult{
				Verdict: model.VerdictAPIError,
				Rating:  err.Error(),
			}
		} else {
			result = b.verifier.Verify(ctx, claim.Statement)
		}

		out[i] = model.VerifiedClaim{ClaimRecord: claim, Result: result}
		if progress != nil {
			progress(i+1, total)
		}
	}

	if err := ctx.Err(); err != nil {
		logger.Log.Warnf("verification interrupted: %v", err)
	}

	return out
}

// Fraction converts a progress report into the 0..1 share of rows done
func Fraction(done, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(done) / float64(total)
}
