package snapshot

import (
	"strings"
)

// FenceStyle selects how code fences around file content are sized.
type FenceStyle int

const (
	// FenceFixed always uses three backticks. This is the historical
	// wire format; content containing its own three-backtick line will
	// corrupt the snapshot when parsed back.
	FenceFixed FenceStyle = iota

	// FenceAdaptive sizes each fence one backtick longer than the
	// longest backtick run in the block's content, so embedded fences
	// never terminate a block early.
	FenceAdaptive
)

// ParseFenceStyle maps a config/flag value to a FenceStyle.
// Empty and "fixed" select FenceFixed; "adaptive" selects FenceAdaptive.
func ParseFenceStyle(s string) (FenceStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return FenceFixed, true
	case "adaptive":
		return FenceAdaptive, true
	}
	return FenceFixed, false
}

// Block is one file's contribution to the snapshot: its root-relative
// slash-normalized path and its raw text content.
type Block struct {
	Path    string
	Content string
}

// Render formats the block as it appears in the snapshot file: a header
// line with the relative path, the content inside a backtick fence, and
// a trailing blank line. Content is embedded verbatim.
func (b Block) Render(style FenceStyle) string {
	fence := "```"
	if style == FenceAdaptive {
		fence = fenceFor(b.Content)
	}

	var sb strings.Builder
	sb.Grow(len(b.Path) + len(b.Content) + 2*len(fence) + 6)
	sb.WriteString(b.Path)
	sb.WriteString("\n")
	sb.WriteString(fence)
	sb.WriteString("\n")
	sb.WriteString(b.Content)
	sb.WriteString("\n")
	sb.WriteString(fence)
	sb.WriteString("\n\n")
	return sb.String()
}

// fenceFor returns a backtick fence longer than any backtick run in the
// content, never shorter than three backticks.
func fenceFor(content string) string {
	longest := 0
	run := 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	size := longest + 1
	if size < 3 {
		size = 3
	}
	return strings.Repeat("`", size)
}
