package goldmark

import "testing"

func TestFenceStyleOfLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantChar   byte
		wantLength int
		wantOK     bool
	}{
		{name: "three backticks", line: "```", wantChar: '`', wantLength: 3, wantOK: true},
		{name: "backticks with info", line: "```go", wantChar: '`', wantLength: 3, wantOK: true},
		{name: "four tildes", line: "~~~~", wantChar: '~', wantLength: 4, wantOK: true},
		{name: "indented fence", line: "  ```", wantChar: '`', wantLength: 3, wantOK: true},
		{name: "two backticks", line: "``", wantOK: false},
		{name: "plain text", line: "code", wantOK: false},
		{name: "empty", line: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			char, length, ok := fenceStyleOfLine([]byte(tt.line))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if char != tt.wantChar || length != tt.wantLength {
				t.Errorf("got (%q, %d), want (%q, %d)", char, length, tt.wantChar, tt.wantLength)
			}
		})
	}
}

func TestIsClosingFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		char   byte
		minLen int
		want   bool
	}{
		{name: "exact match", line: "```", char: '`', minLen: 3, want: true},
		{name: "longer run", line: "`````", char: '`', minLen: 3, want: true},
		{name: "trailing spaces", line: "```  ", char: '`', minLen: 3, want: true},
		{name: "too short", line: "``", char: '`', minLen: 3, want: false},
		{name: "wrong char", line: "~~~", char: '`', minLen: 3, want: false},
		{name: "info after run", line: "```go", char: '`', minLen: 3, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isClosingFence([]byte(tt.line), tt.char, tt.minLen); got != tt.want {
				t.Errorf("isClosingFence(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsRuleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "dashes", line: "---", want: true},
		{name: "spaced stars", line: "* * *", want: true},
		{name: "underscores", line: "___", want: true},
		{name: "long run", line: "----------", want: true},
		{name: "quoted rule", line: "> ---", want: true},
		{name: "two dashes", line: "--", want: false},
		{name: "mixed chars", line: "-*-", want: false},
		{name: "text", line: "abc", want: false},
		{name: "empty", line: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRuleLine([]byte(tt.line)); got != tt.want {
				t.Errorf("isRuleLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSetextUnderlineLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantLevel int
		wantOK    bool
	}{
		{name: "equals", line: "===", wantLevel: 1, wantOK: true},
		{name: "single equal", line: "=", wantLevel: 1, wantOK: true},
		{name: "dashes", line: "----", wantLevel: 2, wantOK: true},
		{name: "trailing spaces", line: "===  ", wantLevel: 1, wantOK: true},
		{name: "mixed", line: "=-=", wantOK: false},
		{name: "text", line: "body", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, ok := setextUnderlineLevel([]byte(tt.line))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && level != tt.wantLevel {
				t.Errorf("level = %d, want %d", level, tt.wantLevel)
			}
		})
	}
}

func TestIsAlignmentRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "outer pipes", line: "| --- | --- |", want: true},
		{name: "no outer pipes", line: "--- | ---", want: true},
		{name: "colons", line: "| :-- | :-: | --: |", want: true},
		{name: "single cell", line: "| - |", want: true},
		{name: "data row", line: "| 1 | 2 |", want: false},
		{name: "empty cell", line: "|  | - |", want: false},
		{name: "empty", line: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isAlignmentRow([]byte(tt.line)); got != tt.want {
				t.Errorf("isAlignmentRow(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestExtendToLines(t *testing.T) {
	t.Parallel()

	content := []byte("> one\n> two\nafter")
	from, to := extendToLines(content, 2, 9)
	if from != 0 {
		t.Errorf("from = %d, want 0", from)
	}
	if to != 11 {
		t.Errorf("to = %d, want 11", to)
	}
}

func TestSplitPipesEscapes(t *testing.T) {
	t.Parallel()

	cells := splitPipes([]byte(`a\|b|c`))
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	if string(cells[0]) != `a\|b` {
		t.Errorf("cells[0] = %q", cells[0])
	}
	if string(cells[1]) != "c" {
		t.Errorf("cells[1] = %q", cells[1])
	}
}
