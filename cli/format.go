package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/beanline/errors"
	"github.com/robinvdvleuten/beanline/formatter"
	"github.com/robinvdvleuten/beanline/loader"
)

// FormatCmd rewrites a ledger file in canonical form: dashed dates,
// sorted commodity lists, two-space posting indents. Without --write the
// result goes to stdout.
type FormatCmd struct {
	File  string `arg:"" help:"Ledger input filename." type:"existingfile"`
	Write bool   `help:"Rewrite the file in place instead of printing to stdout."`
	Yes   bool   `help:"Skip the confirmation prompt when rewriting."`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	result, err := loader.Load(cmd.File)
	if err != nil {
		return err
	}

	if !result.Valid() {
		for _, diag := range result.Diagnostics {
			printError(ctx.Stderr, fmt.Sprintf("%s:%d", cmd.File, diag.Line))
			_, _ = fmt.Fprintln(ctx.Stderr, errors.NewTextFormatter(diag.Source).Format(diag.Err))
		}
		printError(ctx.Stderr, "cannot format a file with malformed directives")
		return NewCommandError(1)
	}

	var buf strings.Builder
	for i, directive := range result.Directives {
		if i > 0 {
			buf.WriteByte('\n')
		}
		formatter.FormatDirective(directive, &buf)
		buf.WriteByte('\n')
	}
	canonical := buf.String()

	if !cmd.Write {
		_, _ = fmt.Fprint(ctx.Stdout, canonical)
		return nil
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(fmt.Sprintf("Rewrite %s in canonical form?", cmd.File))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "left %s unchanged", pathStyle.Render(cmd.File))
			return nil
		}
	}

	info, err := os.Stat(cmd.File)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.File, []byte(canonical), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.File, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("formatted %d directive(s) in %s",
		len(result.Directives), pathStyle.Render(cmd.File)))
	return nil
}
