package snapshot

import (
	"strings"
	"testing"
)

// TestBlockRenderFixed verifies the exact wire format of a block
func TestBlockRenderFixed(t *testing.T) {
	b := Block{Path: "src/a.txt", Content: "hello"}

	want := "src/a.txt\n```\nhello\n```\n\n"
	if got := b.Render(FenceFixed); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// TestBlockRenderAdaptive verifies adaptive fences outgrow embedded
// backtick runs.
func TestBlockRenderAdaptive(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantFence string
	}{
		{"plain content", "hello", "```"},
		{"embedded fence", "code\n```\ninner\n```\n", "````"},
		{"long run", "a `````` b", "```````"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Block{Path: "f.md", Content: tt.content}
			got := b.Render(FenceAdaptive)

			if !strings.HasPrefix(got, "f.md\n"+tt.wantFence+"\n") {
				t.Errorf("Render() = %q, want fence %q", got, tt.wantFence)
			}
			if !strings.HasSuffix(got, "\n"+tt.wantFence+"\n\n") {
				t.Errorf("Render() = %q, want closing fence %q", got, tt.wantFence)
			}
		})
	}
}

// TestResultRenderOrder verifies concatenation preserves block order
func TestResultRenderOrder(t *testing.T) {
	r := &Result{Blocks: []Block{
		{Path: "a.txt", Content: "first"},
		{Path: "b.txt", Content: "second"},
	}}

	want := "a.txt\n```\nfirst\n```\n\nb.txt\n```\nsecond\n```\n\n"
	if got := string(r.Render(FenceFixed)); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// TestParseFenceStyle maps flag values to styles
func TestParseFenceStyle(t *testing.T) {
	tests := []struct {
		input string
		want  FenceStyle
		ok    bool
	}{
		{"", FenceFixed, true},
		{"fixed", FenceFixed, true},
		{"Adaptive", FenceAdaptive, true},
		{"banana", FenceFixed, false},
	}

	for _, tt := range tests {
		got, ok := ParseFenceStyle(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFenceStyle(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
