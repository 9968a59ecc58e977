package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// TestAskTrimsReply verifies replies are whitespace-trimmed
func TestAskTrimsReply(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  /tmp/project  \n"), &out)

	reply, err := p.Ask("Root directory?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != "/tmp/project" {
		t.Errorf("Ask() = %q, want %q", reply, "/tmp/project")
	}
	if !strings.Contains(out.String(), "Root directory?") {
		t.Errorf("question not written to output: %q", out.String())
	}
}

// TestAskLastLineWithoutNewline verifies EOF-terminated input still reads
func TestAskLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("answer"), &bytes.Buffer{})

	reply, err := p.Ask("Q?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != "answer" {
		t.Errorf("Ask() = %q, want %q", reply, "answer")
	}
}

// TestConfirm verifies yes/no parsing
func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"YES\n", true},
		{"no\n", false},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm("Continue?")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
