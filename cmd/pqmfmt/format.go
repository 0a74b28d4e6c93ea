package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pqmfmt"
	"pqmfmt/internal/cache"
	"pqmfmt/internal/driver"
)

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags := cmd.Flags()
	check, _ := flags.GetBool("check")
	write, _ := flags.GetBool("write")
	output, _ := flags.GetString("output")
	useStdin, _ := flags.GetBool("stdin")
	noColor, _ := flags.GetBool("no-color")
	noProgress, _ := flags.GetBool("no-progress")

	if noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return newCliError(exitIOError, "%s", err)
	}

	if useStdin {
		return runStdin(cfg, check, output)
	}
	if len(args) == 0 {
		return runClipboard(cfg)
	}
	return runFiles(cmd.Context(), args, cfg, check, write, output, noProgress)
}

func runStdin(cfg pqmfmt.Config, check bool, output string) error {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return newCliError(exitIOError, "error reading stdin: %v", err)
	}

	formatted, err := pqmfmt.Format(string(content), cfg)
	if err != nil {
		return newCliError(exitParseError, "parse error:\n%v", err)
	}

	if check {
		if formatted != string(content) {
			return newCliError(exitNotFormatted, "input is not formatted")
		}
		return nil
	}
	if output != "" {
		if err := os.WriteFile(output, []byte(formatted), 0o644); err != nil {
			return newCliError(exitIOError, "error writing to %s: %v", output, err)
		}
		return nil
	}
	fmt.Print(formatted)
	return nil
}

func runClipboard(cfg pqmfmt.Config) error {
	res := driver.FormatClipboard(cfg)
	switch {
	case res.NotPQM:
		return newCliError(exitIOError, "clipboard does not contain Power Query M code\n(expected to start with 'let', '(', '[', '{', or 'section')")
	case res.Err != nil:
		if _, ok := res.Err.(*pqmfmt.ParseError); ok {
			fmt.Fprintln(os.Stderr, "format error. Error message and original code copied to clipboard.")
			return newCliError(exitParseError, "%v", res.Err)
		}
		if _, ok := res.Err.(*pqmfmt.LexError); ok {
			fmt.Fprintln(os.Stderr, "format error. Error message and original code copied to clipboard.")
			return newCliError(exitParseError, "%v", res.Err)
		}
		return newCliError(exitIOError, "%v", res.Err)
	default:
		fmt.Fprintln(os.Stderr, "formatted code copied to clipboard.")
		return nil
	}
}

func runFiles(ctx context.Context, paths []string, cfg pqmfmt.Config, check, write bool, output string, noProgress bool) error {
	diskCache, err := cache.Open("pqmfmt")
	if err != nil {
		diskCache = nil
	}

	var events chan driver.Event
	showProgress := !noProgress && len(paths) > 1 && isTerminal(os.Stdout)
	if showProgress {
		events = make(chan driver.Event, len(paths)*4)
	}

	opts := driver.FormatOptions{
		Config: cfg,
		Check:  check,
		Write:  write && output == "",
		Cache:  diskCache,
		Events: events,
	}

	var results []driver.FormatResult
	var runErr error
	if showProgress {
		results, runErr = runWithProgress(ctx, paths, opts, events)
	} else {
		results, runErr = driver.FormatPaths(ctx, paths, opts)
	}
	if runErr != nil {
		return newCliError(exitIOError, "%v", runErr)
	}

	hasErrors, notFormatted := false, false
	for _, res := range results {
		if res.Err != nil {
			if isParseFailure(res.Err) {
				fmt.Fprintf(os.Stderr, "error in %s:\n%v\n", res.Path, res.Err)
			} else {
				fmt.Fprintf(os.Stderr, "error reading %s: %v\n", res.Path, res.Err)
			}
			hasErrors = true
			continue
		}

		switch {
		case check:
			if res.Changed {
				fmt.Fprintf(os.Stderr, "%s: not formatted\n", res.Path)
				notFormatted = true
			}
		case write && output == "":
			if res.Changed {
				fmt.Fprintf(os.Stderr, "formatted: %s\n", res.Path)
			}
		case output != "":
			if err := os.WriteFile(output, res.Formatted, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "error writing %s: %v\n", output, err)
				hasErrors = true
			}
		default:
			os.Stdout.Write(res.Formatted)
		}
	}

	if hasErrors {
		return newCliError(exitParseError, "")
	}
	if notFormatted {
		return newCliError(exitNotFormatted, "")
	}
	return nil
}

func isParseFailure(err error) bool {
	switch err.(type) {
	case *pqmfmt.ParseError, *pqmfmt.LexError:
		return true
	default:
		return false
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
