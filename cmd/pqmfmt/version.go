package main

// cliVersion is the semantic version of the CLI, overridable at build time
// via -ldflags "-X main.cliVersion=...". gitCommit and buildDate are set the
// same way by release builds and left blank for local builds.
var (
	cliVersion = "0.1.0-dev"
	gitCommit  = ""
	buildDate  = ""
)

// -V/--version is handled by cobra's built-in version flag (rootCmd.Version
// is set in main.go's var block, and the shorthand is declared in init()).
// Declaring it here with BoolP gives it the "-V" shorthand the automatic
// flag cobra would otherwise add doesn't carry.
func init() {
	rootCmd.Flags().BoolP("version", "V", false, "print the version and exit")
}
