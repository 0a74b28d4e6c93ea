package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for the CLI's various failure modes.
const (
	exitOK           = 0
	exitNotFormatted = 1
	exitParseError   = 2
	exitIOError      = 3
)

var rootCmd = &cobra.Command{
	Use:     "pqmfmt [flags] [file...]",
	Short:   "Format Power Query M source code",
	Long:    "pqmfmt formats Power Query M (\"M\") source code: files, stdin, or the system clipboard when given neither.",
	Version: cliVersion,
	Args:    cobra.ArbitraryArgs,
	RunE:    runFormat,
}

func init() {
	rootCmd.Flags().BoolP("check", "c", false, "check whether input is already formatted, without writing it")
	rootCmd.Flags().BoolP("write", "w", false, "overwrite each input file in place")
	rootCmd.Flags().StringP("output", "o", "", "write formatted output to PATH instead of stdout")
	rootCmd.Flags().Bool("stdin", false, "read source from stdin instead of a file")
	rootCmd.Flags().Bool("compact", false, "use compact layout mode")
	rootCmd.Flags().Bool("expanded", false, "use expanded layout mode")
	rootCmd.Flags().Int("indent", 4, "indent width")
	rootCmd.Flags().Bool("tabs", false, "indent with tabs instead of spaces")
	rootCmd.Flags().Bool("no-color", false, "disable colorized output")
	rootCmd.Flags().Bool("no-progress", false, "disable the interactive progress bar for multi-file runs")
	rootCmd.SetVersionTemplate(versionTemplate())
}

// versionTemplate appends the commit and build date to the version line
// when a release build set them via -ldflags; local builds show just the
// version.
func versionTemplate() string {
	line := "pqmfmt {{.Version}}"
	if gitCommit != "" {
		line += " (" + gitCommit
		if buildDate != "" {
			line += ", " + buildDate
		}
		line += ")"
	}
	return line + "\n"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if ce, ok := err.(*cliError); ok {
			if ce.message != "" {
				fmt.Fprintln(os.Stderr, ce.message)
			}
			os.Exit(ce.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitIOError)
	}
}

// cliError carries an exit code alongside the error message, so RunE can
// drive os.Exit with a precise code instead of cobra's blanket exit(1).
type cliError struct {
	code    int
	message string
}

func (e *cliError) Error() string { return e.message }

func newCliError(code int, format string, args ...any) *cliError {
	return &cliError{code: code, message: fmt.Sprintf(format, args...)}
}
