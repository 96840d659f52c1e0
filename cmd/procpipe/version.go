package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata injected via -ldflags at release time. When absent
// (plain `go build` or `go install`), the values fall back to whatever
// the module's build info carries.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildSetting looks up a key in the binary's embedded build settings.
func buildSetting(key string) (string, bool) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return "", false
}

// getVersion returns the release version, the module version from build
// info, or "(devel)".
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}
	return "(devel)"
}

// getCommit returns the short commit hash the binary was built from,
// or "unknown".
func getCommit() string {
	if commit != "" {
		return commit
	}
	if revision, ok := buildSetting("vcs.revision"); ok {
		if len(revision) > 7 {
			return revision[:7]
		}
		return revision
	}
	return "unknown"
}

// getDate returns the commit timestamp the binary was built from,
// or "unknown".
func getDate() string {
	if date != "" {
		return date
	}
	if t, ok := buildSetting("vcs.time"); ok {
		return t
	}
	return "unknown"
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of procpipe.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "procpipe %s (commit %s, built %s)\n",
				getVersion(), getCommit(), getDate())
		},
	}
}
