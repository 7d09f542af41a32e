package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/beanline/errors"
	"github.com/robinvdvleuten/beanline/formatter"
	"github.com/robinvdvleuten/beanline/parser"
)

// ParseCmd reads directives from stdin and echoes each one back as its
// parse tree and canonical rendering. Malformed directives print a
// diagnostic with a caret under the offending input.
type ParseCmd struct{}

func (cmd *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	return runParse(ctx.Stdout, os.Stdin)
}

func runParse(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var group []string

	flush := func() {
		if len(group) == 0 {
			return
		}
		source := strings.Join(group, "\n")
		group = group[:0]

		directive, err := parser.ParseDirective(source)
		if err != nil {
			printError(w, errors.NewTextFormatter(source).Format(err))
			return
		}

		_, _ = fmt.Fprintln(w, repr.String(directive, repr.Indent("  ")))
		printInfof(w, "%s", formatter.Directive(directive))
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			flush()
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && len(group) > 0 {
			group = append(group, line)
			continue
		}
		flush()
		group = append(group, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
