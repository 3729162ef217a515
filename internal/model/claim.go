package model

import "time"

// DateLayout is the calendar-date format used in exports
const DateLayout = "2006-01-02"

// ClaimRecord is one fact-check listing entry collected from the listing site
type ClaimRecord struct {
	Author    string    `json:"author"`    // Reporter credited in the card footer, empty if unknown
	Statement string    `json:"statement"` // The quoted claim text
	Source    string    `json:"source"`    // Person or outlet who made the claim
	Date      time.Time `json:"date"`      // Day the claim was stated
	Label     string    `json:"label"`     // Site rating, e.g. "Pants On Fire"
}

// DateString returns the claim date as YYYY-MM-DD
func (c ClaimRecord) DateString() string {
	if c.Date.IsZero() {
		return ""
	}
	return c.Date.Format(DateLayout)
}

// ClaimColumns are the flat-file columns for collected claims, in order
var ClaimColumns = []string{"author", "statement", "source", "date", "label"}
