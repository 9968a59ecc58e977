package snapfile

import (
	"fmt"
	"strings"
)

// VerifyReport summarizes a snapshot's structural health.
type VerifyReport struct {
	// Blocks is the number of well-formed blocks found.
	Blocks int

	// Warnings describes structural suspicions: headerless fences,
	// unterminated fences, or block boundaries that look like an
	// embedded three-backtick line split a fixed fence.
	Warnings []string
}

// OK reports whether the snapshot verified without suspicion.
func (r *VerifyReport) OK() bool {
	return len(r.Warnings) == 0
}

// Verify checks a snapshot's block structure. A fixed-fence snapshot
// whose file content itself contained a fence line parses into a skewed
// block layout; Verify surfaces that rather than silently yielding
// garbage entries. The raw line structure is checked first, then
// cross-checked against what the markdown parser recovers.
func Verify(source []byte) (*VerifyReport, error) {
	report := &VerifyReport{}
	report.Blocks, report.Warnings = scanStructure(source)

	entries, orphans, err := parse(source)
	if err != nil {
		return nil, err
	}
	if parsed := len(entries) + orphans; parsed != report.Blocks {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("markdown parse found %d block(s) but line structure has %d", parsed, report.Blocks))
	}

	for _, e := range entries {
		if strings.Contains(e.Path, "`") || strings.ContainsAny(e.Path, " \t") {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("suspicious path header %q; a fence may have terminated early", e.Path))
		}
	}

	return report, nil
}

// isFence reports whether a line is a fence of three or more backticks.
func isFence(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '`' {
			return false
		}
	}
	return true
}

// scanStructure walks the raw lines against the writer's grammar:
// header line, opening fence, content, matching closing fence, blank
// separator. Deviations become warnings.
func scanStructure(source []byte) (int, []string) {
	lines := strings.Split(strings.ReplaceAll(string(source), "\r\n", "\n"), "\n")

	blocks := 0
	var warnings []string

	i := 0
	for i < len(lines) {
		if lines[i] == "" {
			i++
			continue
		}

		header := lines[i]
		i++

		if isFence(header) {
			warnings = append(warnings, "fence without a path header")
			continue
		}
		if i >= len(lines) || !isFence(lines[i]) {
			warnings = append(warnings, fmt.Sprintf("path header %q is not followed by a fence", header))
			continue
		}

		fence := lines[i]
		i++

		closed := false
		for i < len(lines) {
			if lines[i] == fence {
				closed = true
				i++
				break
			}
			i++
		}
		if !closed {
			warnings = append(warnings, fmt.Sprintf("unterminated fence for %q", header))
			break
		}

		blocks++

		if i < len(lines) && lines[i] != "" {
			warnings = append(warnings,
				fmt.Sprintf("no blank line after the block for %q; an embedded fence likely split it", header))
		}
	}

	return blocks, warnings
}
