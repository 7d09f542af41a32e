// Package loader reads ledger files and splits them into directive
// groups. A group starts at a non-indented, non-comment line and extends
// over the indented lines that follow, which is how multi-line
// transactions are written. Each group is parsed independently, so one
// malformed directive does not hide the rest of the file.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robinvdvleuten/beanline/model"
	"github.com/robinvdvleuten/beanline/parser"
)

// Diagnostic is a parse failure for one directive group.
type Diagnostic struct {
	// Line is the 1-based line number where the group starts.
	Line int
	// Source is the full text of the failed group.
	Source string
	// Err is the parse error, normally a *parser.Error with a span
	// relative to Source.
	Err error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

// Result holds the successfully parsed directives and the diagnostics of
// the groups that failed.
type Result struct {
	Directives  []model.Directive
	Diagnostics []Diagnostic
}

// Valid reports whether the whole input parsed cleanly.
func (r *Result) Valid() bool { return len(r.Diagnostics) == 0 }

// Load reads and parses the file at path.
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads directive groups from r. Blank lines and lines starting
// with ';' separate or annotate groups and are never part of one.
func Parse(r io.Reader) (*Result, error) {
	result := &Result{}

	var group []string
	groupLine := 0

	flush := func() {
		if len(group) == 0 {
			return
		}
		source := strings.Join(group, "\n")
		directive, err := parser.ParseDirective(source)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Line: groupLine, Source: source, Err: err})
		} else {
			result.Directives = append(result.Directives, directive)
		}
		group = group[:0]
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			flush()
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'
		if indented && len(group) > 0 {
			group = append(group, line)
			continue
		}

		flush()
		if indented {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Line:   lineno,
				Source: line,
				Err:    fmt.Errorf("indented line outside a transaction"),
			})
			continue
		}
		group = append(group, line)
		groupLine = lineno
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return result, nil
}
