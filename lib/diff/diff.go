package diff

import "strings"

type ChangeType string

const (
	Add       ChangeType = "add"
	Remove    ChangeType = "remove"
	Unchanged ChangeType = "unchanged"
)

// Change describes the fate of a single line when comparing two texts.
// LineA and LineB are 1-based; a zero value means the line does not exist
// on that side.
type Change struct {
	Type    ChangeType `json:"type"`
	Content string     `json:"content"`
	LineA   int        `json:"line_number_a,omitempty"`
	LineB   int        `json:"line_number_b,omitempty"`
}

// SplitLines splits a text into lines. An empty document is zero lines,
// not one blank line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// Compute compares two texts line by line and returns the ordered change
// sequence that transforms the old text into the new one.
//
// The walk is a greedy two-cursor scan, not an LCS diff. On a mismatch both
// sides are scanned forward for the other side's current line and whichever
// lookahead finds its twin first wins, with the deletion path preferred on
// exact ties. The output is therefore not guaranteed to be minimal, but it
// is stable and the rendering layer depends on its exact shape.
func Compute(textA, textB string) []Change {
	linesA := SplitLines(textA)
	linesB := SplitLines(textB)

	changes := make([]Change, 0, max(len(linesA), len(linesB)))
	indexA := 0
	indexB := 0

	for indexA < len(linesA) || indexB < len(linesB) {
		if indexA >= len(linesA) {
			changes = append(changes, Change{
				Type:    Add,
				Content: linesB[indexB],
				LineB:   indexB + 1,
			})
			indexB++
			continue
		}

		if indexB >= len(linesB) {
			changes = append(changes, Change{
				Type:    Remove,
				Content: linesA[indexA],
				LineA:   indexA + 1,
			})
			indexA++
			continue
		}

		if linesA[indexA] == linesB[indexB] {
			changes = append(changes, Change{
				Type:    Unchanged,
				Content: linesA[indexA],
				LineA:   indexA + 1,
				LineB:   indexB + 1,
			})
			indexA++
			indexB++
			continue
		}

		// Mismatch. Look ahead on both sides for the other side's line.
		lineAInB := indexOf(linesB[indexB+1:], linesA[indexA])
		lineBInA := indexOf(linesA[indexA+1:], linesB[indexB])

		if lineBInA >= 0 && (lineAInB < 0 || lineAInB >= lineBInA) {
			changes = append(changes, Change{
				Type:    Remove,
				Content: linesA[indexA],
				LineA:   indexA + 1,
			})
			indexA++
		} else if lineAInB >= 0 {
			changes = append(changes, Change{
				Type:    Add,
				Content: linesB[indexB],
				LineB:   indexB + 1,
			})
			indexB++
		} else {
			// Neither line reappears later, treat as a substitution.
			changes = append(changes, Change{
				Type:    Remove,
				Content: linesA[indexA],
				LineA:   indexA + 1,
			})
			changes = append(changes, Change{
				Type:    Add,
				Content: linesB[indexB],
				LineB:   indexB + 1,
			})
			indexA++
			indexB++
		}
	}

	return changes
}

// Stats returns the number of added and removed lines in a change sequence.
func Stats(changes []Change) (added int, removed int) {
	for _, change := range changes {
		switch change.Type {
		case Add:
			added++
		case Remove:
			removed++
		}
	}
	return added, removed
}

func indexOf(lines []string, line string) int {
	for i, candidate := range lines {
		if candidate == line {
			return i
		}
	}
	return -1
}
