package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nibzard/agenda-go/internal/agenda"
)

// Format selects the output layout.
type Format struct {
	// Long adds the priority letter, the scope prefix and the deadline.
	Long bool
	// Prefix prints the scope before the description in long format.
	Prefix bool
}

// Line renders a single record.
func (f Format) Line(rec agenda.DisplayRecord) string {
	if !f.Long {
		return rec.Description
	}
	line := fmt.Sprintf("(%c) ", rec.PriorityLetter)
	if f.Prefix && rec.Scope != "" {
		line += rec.Scope + ": "
	}
	line += rec.Description
	if rec.DueDate != "" {
		line += " due:" + rec.DueDate
	}
	return line
}

// Render writes one line per record to w.
func Render(w io.Writer, records []agenda.DisplayRecord, f Format) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintln(bw, f.Line(rec)); err != nil {
			return fmt.Errorf("write agenda: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write agenda: %w", err)
	}
	return nil
}
