package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/factdash/internal/model"
)

// Download names offered by the dashboard
const (
	ClaimsDownloadName   = "claims.csv"
	VerifiedDownloadName = "verified_claims.csv"
)

// WriteClaimsCSV writes author,statement,source,date,label rows
func WriteClaimsCSV(w io.Writer, claims []model.ClaimRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.ClaimColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range claims {
		if err := cw.Write(claimFields(c)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteVerifiedCSV writes the claim columns followed by the four verification columns
func WriteVerifiedCSV(w io.Writer, rows []model.VerifiedClaim) error {
	cw := csv.NewWriter(w)
	header := append(append([]string{}, model.ClaimColumns...), model.VerificationColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := append(claimFields(r.ClaimRecord),
			string(r.Result.Verdict),
			r.Result.Publisher,
			r.Result.Rating,
			r.Result.URL,
		)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveClaimsCSV overwrites path with the claims table
func SaveClaimsCSV(path string, claims []model.ClaimRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return WriteClaimsCSV(f, claims)
}

// ReadClaimsCSV loads a claims table written by WriteClaimsCSV. Columns are
// matched by header name; rows without a statement are dropped.
func ReadClaimsCSV(r io.Reader) ([]model.ClaimRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := index["statement"]; !ok {
		return nil, fmt.Errorf("missing statement column")
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var claims []model.ClaimRecord
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		statement := field(record, "statement")
		if statement == "" {
			continue
		}

		claim := model.ClaimRecord{
			Author:    field(record, "author"),
			Statement: statement,
			Source:    field(record, "source"),
			Label:     field(record, "label"),
		}
		if raw := field(record, "date"); raw != "" {
			d, err := time.Parse(model.DateLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse date %q: %w", line, raw, err)
			}
			claim.Date = d
		}
		claims = append(claims, claim)
	}

	return claims, nil
}

// LoadClaimsCSV reads a claims table from path
func LoadClaimsCSV(path string) ([]model.ClaimRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadClaimsCSV(f)
}

func claimFields(c model.ClaimRecord) []string {
	return []string{c.Author, c.Statement, c.Source, c.DateString(), c.Label}
}
