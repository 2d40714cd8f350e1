// Package report renders the ordered difference stream produced by the
// differ. The core guarantees content and ordering only; every sink format
// lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/OutSquareCapital/sigdiff/internal/signature"
)

// Record is the line-delimited JSON shape of one difference.
type Record struct {
	ClassName string `json:"class_name"`
	Method    string `json:"method"`
	Issue     string `json:"issue"`
	Left      string `json:"left"`
	Right     string `json:"right"`
}

// WriteNDJSON writes one JSON record per difference, preserving order.
func WriteNDJSON(w io.Writer, differences []signature.Difference) error {
	encoder := json.NewEncoder(w)
	for _, diff := range differences {
		record := Record{
			ClassName: diff.ClassName,
			Method:    diff.MethodName,
			Issue:     string(diff.Issue),
			Left:      diff.Left,
			Right:     diff.Right,
		}
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write difference record: %w", err)
		}
	}
	return nil
}
