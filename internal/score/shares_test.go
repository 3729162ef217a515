package score

import (
	"testing"

	"github.com/ppiankov/factdash/internal/model"
)

func rows(verdicts ...model.Verdict) []model.VerifiedClaim {
	out := make([]model.VerifiedClaim, len(verdicts))
	for i, v := range verdicts {
		out[i].Result.Verdict = v
	}
	return out
}

func TestVerdictShares(t *testing.T) {
	got := VerdictShares(rows(model.VerdictTrue, model.VerdictTrue, model.VerdictFalse, model.VerdictUnverified))

	want := []model.VerdictShare{
		{Verdict: model.VerdictTrue, Count: 2, Percent: 50.0},
		{Verdict: model.VerdictFalse, Count: 1, Percent: 25.0},
		{Verdict: model.VerdictUnverified, Count: 1, Percent: 25.0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d shares, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("share %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVerdictShares_Rounding(t *testing.T) {
	got := VerdictShares(rows(model.VerdictFalse, model.VerdictFalse, model.VerdictAPIError))

	if got[0].Verdict != model.VerdictFalse || got[0].Percent != 66.7 {
		t.Errorf("unexpected first share %+v", got[0])
	}
	if got[1].Verdict != model.VerdictAPIError || got[1].Percent != 33.3 {
		t.Errorf("unexpected second share %+v", got[1])
	}
}

func TestVerdictShares_Empty(t *testing.T) {
	got := VerdictShares(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestVerdictShares_SingleVerdict(t *testing.T) {
	got := VerdictShares(rows(model.VerdictAPIKeyMissing, model.VerdictAPIKeyMissing))
	if len(got) != 1 || got[0].Percent != 100 || got[0].Count != 2 {
		t.Errorf("unexpected shares %+v", got)
	}
}
