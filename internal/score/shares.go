package score

import (
	"math"
	"sort"

	"github.com/ppiankov/factdash/internal/model"
)

// VerdictShares computes the percentage share of each distinct verdict in rows.
// Shares are rounded to one decimal and ordered by count, most frequent first,
// with ties broken by verdict name.
func VerdictShares(rows []model.VerifiedClaim) []model.VerdictShare {
	if len(rows) == 0 {
		return []model.VerdictShare{}
	}

	counts := make(map[model.Verdict]int)
	for _, row := range rows {
		counts[row.Result.Verdict]++
	}

	shares := make([]model.VerdictShare, 0, len(counts))
	total := float64(len(rows))
	for verdict, n := range counts {
		shares = append(shares, model.VerdictShare{
			Verdict: verdict,
			Count:   n,
			Percent: round1(float64(n) / total * 100),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Verdict < shares[j].Verdict
	})

	return shares
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
