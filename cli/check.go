package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/beanline/errors"
	"github.com/robinvdvleuten/beanline/loader"
)

// CheckCmd parses a ledger file and reports every malformed directive.
// With --watch it stays running and re-checks the file on every write.
type CheckCmd struct {
	File  string `arg:"" help:"Ledger input filename." type:"existingfile"`
	Watch bool   `help:"Re-check the file whenever it changes."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	ok, err := checkFile(ctx, cmd.File, globals)
	if err != nil {
		return err
	}

	if !cmd.Watch {
		if !ok {
			return NewCommandError(1)
		}
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file; editors that rename on
	// save would otherwise drop the watch after the first write.
	if err := watcher.Add(filepath.Dir(cmd.File)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stdout, "watching %s", pathStyle.Render(cmd.File))

	target, err := filepath.Abs(cmd.File)
	if err != nil {
		return err
	}

	for {
		select {
		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			path, err := filepath.Abs(event.Name)
			if err != nil || path != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			_, _ = fmt.Fprintln(ctx.Stdout)
			if _, err := checkFile(ctx, cmd.File, globals); err != nil {
				return err
			}
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

// checkFile parses the file and prints a diagnostic per failed directive.
// It returns false when the file has at least one malformed directive.
func checkFile(ctx *kong.Context, path string, globals *Globals) (bool, error) {
	result, err := loader.Load(path)
	if err != nil {
		return false, err
	}

	for i, diag := range result.Diagnostics {
		if i > 0 {
			_, _ = fmt.Fprintln(ctx.Stderr)
		}
		printError(ctx.Stderr, fmt.Sprintf("%s:%d", path, diag.Line))
		_, _ = fmt.Fprintln(ctx.Stderr, errors.NewTextFormatter(diag.Source).Format(diag.Err))
	}

	if !result.Valid() {
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d malformed directive(s) found", len(result.Diagnostics)))
		return false, nil
	}

	if globals.Verbose {
		printInfof(ctx.Stdout, "parsed %d directive(s)", len(result.Directives))
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed on %s", pathStyle.Render(filepath.Base(path))))
	return true, nil
}
