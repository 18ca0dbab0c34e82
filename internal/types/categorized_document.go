package types

import "fmt"

// DateLayout is the date format used by the categorized document shape.
const DateLayout = "2006/01/02"

// CategorizedDocument is the alternate JSON artifact shape: flat metadata
// fields plus a category-code to label mapping. Produced by the upstream
// classification tooling; this tool loads, compacts, and validates it.
type CategorizedDocument struct {
	LastUpdateDate string            `json:"lastUpdateDate"` // DateLayout format
	TotalCount     int               `json:"totalCount"`
	Description    string            `json:"description,omitempty"`
	Categories     map[string]string `json:"categories,omitempty"`
	Words          []string          `json:"words"`
}

// Validate checks the count invariant: the declared total must equal the
// actual number of words.
func (d *CategorizedDocument) Validate() error {
	if d.TotalCount != len(d.Words) {
		return fmt.Errorf("totalCount is %d but words has %d entries", d.TotalCount, len(d.Words))
	}
	return nil
}
