package ledger

// Reason classifies the corruption found by a validation sweep.
type Reason string

const (
	// TamperedData means a sealed block's stored hash no longer matches
	// the hash recomputed from its current field values.
	TamperedData Reason = "TamperedData"

	// BrokenLink means a block's PrevHash no longer matches its
	// predecessor's current hash.
	BrokenLink Reason = "BrokenLink"
)

// Verdict is the outcome of Validate. When Valid is false, Index and
// Reason name the first offending block; later corruption is not
// scanned for.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Index  int    `json:"index,omitempty"`
	Reason Reason `json:"reason,omitempty"`
}
