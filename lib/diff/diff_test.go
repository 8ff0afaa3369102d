package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func reconstruct(changes []Change, keep ...ChangeType) string {
	var lines []string
	for _, change := range changes {
		for _, t := range keep {
			if change.Type == t {
				lines = append(lines, change.Content)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func TestComputeReconstructsBothSides(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
	}{
		{"identical", "one\ntwo", "one\ntwo"},
		{"insertion", "one\ntwo\nthree", "one\ntwo\nfour\nthree"},
		{"deletion", "one\ntwo\nthree", "one\nthree"},
		{"substitution", "alpha\nbeta", "alpha\ngamma"},
		{"reorder", "cat\ndog", "dog\ncat"},
		{"empty old", "", "one\ntwo"},
		{"empty new", "one\ntwo", ""},
		{"both empty", "", ""},
		{"repeated lines", "x\nx\ny\nx", "x\ny\nx\nx"},
		{"blank lines", "a\n\nb", "a\nb\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			changes := Compute(tc.a, tc.b)

			if got := reconstruct(changes, Remove, Unchanged); got != tc.a {
				t.Errorf("old side: got %q, want %q", got, tc.a)
			}
			if got := reconstruct(changes, Add, Unchanged); got != tc.b {
				t.Errorf("new side: got %q, want %q", got, tc.b)
			}
		})
	}
}

func TestComputeIdenticalTexts(t *testing.T) {
	text := "one\ntwo\nthree"
	changes := Compute(text, text)

	if len(changes) != 3 {
		t.Fatalf("got %d changes, want 3", len(changes))
	}
	for i, change := range changes {
		if change.Type != Unchanged {
			t.Errorf("change %d: got type %q, want %q", i, change.Type, Unchanged)
		}
		if change.LineA != i+1 || change.LineB != i+1 {
			t.Errorf("change %d: got line numbers (%d, %d), want (%d, %d)",
				i, change.LineA, change.LineB, i+1, i+1)
		}
	}
}

func TestComputeEmptyDocuments(t *testing.T) {
	// An empty document is zero lines, not one blank line.
	if got := Compute("", ""); len(got) != 0 {
		t.Errorf("got %d changes, want 0", len(got))
	}

	want := []Change{
		{Type: Add, Content: "one", LineB: 1},
		{Type: Add, Content: "two", LineB: 2},
	}
	if d := cmp.Diff(want, Compute("", "one\ntwo")); d != "" {
		t.Errorf("empty old side (-want +got):\n%s", d)
	}
}

func TestComputeInsertion(t *testing.T) {
	want := []Change{
		{Type: Unchanged, Content: "one", LineA: 1, LineB: 1},
		{Type: Unchanged, Content: "two", LineA: 2, LineB: 2},
		{Type: Add, Content: "four", LineB: 3},
		{Type: Unchanged, Content: "three", LineA: 3, LineB: 4},
	}

	got := Compute("one\ntwo\nthree", "one\ntwo\nfour\nthree")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", d)
	}
}

func TestComputeDeletion(t *testing.T) {
	want := []Change{
		{Type: Unchanged, Content: "one", LineA: 1, LineB: 1},
		{Type: Remove, Content: "two", LineA: 2},
		{Type: Unchanged, Content: "three", LineA: 3, LineB: 2},
	}

	got := Compute("one\ntwo\nthree", "one\nthree")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", d)
	}
}

func TestComputeSubstitution(t *testing.T) {
	want := []Change{
		{Type: Unchanged, Content: "alpha", LineA: 1, LineB: 1},
		{Type: Remove, Content: "beta", LineA: 2},
		{Type: Add, Content: "gamma", LineB: 2},
	}

	got := Compute("alpha\nbeta", "alpha\ngamma")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", d)
	}
}

// The greedy walk is not LCS-optimal. A pure reorder resolves the tie in
// favor of the deletion path; this pins down the exact shape the rendering
// depends on.
func TestComputeReorderCharacterization(t *testing.T) {
	want := []Change{
		{Type: Remove, Content: "cat", LineA: 1},
		{Type: Unchanged, Content: "dog", LineA: 2, LineB: 1},
		{Type: Add, Content: "cat", LineB: 2},
	}

	got := Compute("cat\ndog", "dog\ncat")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", d)
	}
}

func TestComputeInsertionCloserThanDeletion(t *testing.T) {
	// B's current line exists ahead in A, but A's current line sits closer
	// ahead in B, so the insertion path wins.
	a := "x\nz"
	b := "y\nx\nz"

	want := []Change{
		{Type: Add, Content: "y", LineB: 1},
		{Type: Unchanged, Content: "x", LineA: 1, LineB: 2},
		{Type: Unchanged, Content: "z", LineA: 2, LineB: 3},
	}

	got := Compute(a, b)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", d)
	}
}

func TestComputeTieBreakBothLookaheadsFound(t *testing.T) {
	// Both lookaheads find a twin: "p" reappears in B at offset 0, "x"
	// reappears in A at offset 1. The insertion match is strictly closer,
	// so the insertion path wins.
	a := "p\nq\nx"
	b := "x\np\nq"

	want := []Change{
		{Type: Add, Content: "x", LineB: 1},
		{Type: Unchanged, Content: "p", LineA: 1, LineB: 2},
		{Type: Unchanged, Content: "q", LineA: 2, LineB: 3},
		{Type: Remove, Content: "x", LineA: 3},
	}

	got := Compute(a, b)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", d)
	}
}

func TestStats(t *testing.T) {
	changes := Compute("one\ntwo\nthree", "one\nfour\nthree\nfive")
	added, removed := Stats(changes)

	wantAdded := 0
	wantRemoved := 0
	for _, change := range changes {
		switch change.Type {
		case Add:
			wantAdded++
		case Remove:
			wantRemoved++
		}
	}

	if added != wantAdded || removed != wantRemoved {
		t.Errorf("got (%d, %d), want (%d, %d)", added, removed, wantAdded, wantRemoved)
	}
	if added == 0 || removed == 0 {
		t.Errorf("expected a mixed diff, got added=%d removed=%d", added, removed)
	}
}

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single line", "abc", []string{"abc"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\n", []string{"a", ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.input)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("unexpected lines (-want +got):\n%s", d)
			}
		})
	}
}
