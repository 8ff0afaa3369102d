package diff

// UnifiedRow is one line of the single-column diff rendering.
type UnifiedRow struct {
	Type    ChangeType `json:"type"`
	Prefix  string     `json:"prefix"`
	LineA   int        `json:"line_number_a,omitempty"`
	LineB   int        `json:"line_number_b,omitempty"`
	Content string     `json:"content"`
}

// SplitRow is one row of the two-column diff rendering. A nil cell is the
// empty placeholder that keeps the columns aligned.
type SplitRow struct {
	Left  *SplitCell `json:"left"`
	Right *SplitCell `json:"right"`
}

type SplitCell struct {
	Type    ChangeType `json:"type"`
	Line    int        `json:"line_number"`
	Content string     `json:"content"`
}

// Unified renders a change sequence as unified-view rows.
func Unified(changes []Change) []UnifiedRow {
	rows := make([]UnifiedRow, 0, len(changes))
	for _, change := range changes {
		row := UnifiedRow{
			Type:    change.Type,
			LineA:   change.LineA,
			LineB:   change.LineB,
			Content: change.Content,
		}
		switch change.Type {
		case Add:
			row.Prefix = "+"
		case Remove:
			row.Prefix = "-"
		default:
			row.Prefix = " "
		}
		rows = append(rows, row)
	}
	return rows
}

// Split renders a change sequence as split-view rows. Removed lines pad the
// right column, added lines pad the left, unchanged lines fill both.
func Split(changes []Change) []SplitRow {
	rows := make([]SplitRow, 0, len(changes))
	for _, change := range changes {
		switch change.Type {
		case Remove:
			rows = append(rows, SplitRow{
				Left: &SplitCell{Type: Remove, Line: change.LineA, Content: change.Content},
			})
		case Add:
			rows = append(rows, SplitRow{
				Right: &SplitCell{Type: Add, Line: change.LineB, Content: change.Content},
			})
		default:
			rows = append(rows, SplitRow{
				Left:  &SplitCell{Type: Unchanged, Line: change.LineA, Content: change.Content},
				Right: &SplitCell{Type: Unchanged, Line: change.LineB, Content: change.Content},
			})
		}
	}
	return rows
}
