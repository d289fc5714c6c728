package document_test

import (
	"testing"

	"github.com/typednotes/livemd/pkg/document"
)

func TestRangeBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		r            document.Range
		expectedFrom int
		expectedTo   int
		empty        bool
	}{
		{"cursor", document.Range{Anchor: 4, Head: 4}, 4, 4, true},
		{"forward", document.Range{Anchor: 2, Head: 7}, 2, 7, false},
		{"backward", document.Range{Anchor: 7, Head: 2}, 2, 7, false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.r.From(); got != testCase.expectedFrom {
				t.Errorf("From: expected %d, got %d", testCase.expectedFrom, got)
			}
			if got := testCase.r.To(); got != testCase.expectedTo {
				t.Errorf("To: expected %d, got %d", testCase.expectedTo, got)
			}
			if got := testCase.r.Empty(); got != testCase.empty {
				t.Errorf("Empty: expected %v, got %v", testCase.empty, got)
			}
		})
	}
}

func TestSelectionMain(t *testing.T) {
	t.Parallel()

	sel := document.Selection{
		Ranges: []document.Range{
			{Anchor: 0, Head: 0},
			{Anchor: 5, Head: 9},
		},
		Primary: 1,
	}

	if main := sel.Main(); main.Head != 9 {
		t.Errorf("expected primary head 9, got %d", main.Head)
	}

	empty := document.Selection{}
	if main := empty.Main(); main.Head != 0 || main.Anchor != 0 {
		t.Errorf("expected zero range for empty selection, got %+v", main)
	}
}

func TestSelectionHeads(t *testing.T) {
	t.Parallel()

	sel := document.Selection{
		Ranges: []document.Range{
			{Anchor: 1, Head: 3},
			{Anchor: 8, Head: 8},
		},
	}

	heads := sel.Heads()
	if len(heads) != 2 || heads[0] != 3 || heads[1] != 8 {
		t.Errorf("expected heads [3 8], got %v", heads)
	}
}

func TestSelectionEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        document.Selection
		b        document.Selection
		expected bool
	}{
		{
			name:     "same cursor",
			a:        document.Cursor(4),
			b:        document.Cursor(4),
			expected: true,
		},
		{
			name:     "different head",
			a:        document.Cursor(4),
			b:        document.Cursor(5),
			expected: false,
		},
		{
			name:     "different range count",
			a:        document.Cursor(4),
			b:        document.Selection{Ranges: []document.Range{{Head: 4}, {Head: 9}}},
			expected: false,
		},
		{
			name:     "anchor matters",
			a:        document.Single(2, 6),
			b:        document.Single(3, 6),
			expected: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.a.Equal(testCase.b); got != testCase.expected {
				t.Errorf("Equal: expected %v, got %v", testCase.expected, got)
			}
		})
	}
}
