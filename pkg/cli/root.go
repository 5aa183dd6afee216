// Package cli implements the hyemockd command surface.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo carries the ldflags-injected version information.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

var rootCmd = &cobra.Command{
	Use:   "hyemockd",
	Short: "Stateful mock server for the HyE service constellation",
	Long: `hyemockd emulates the backend services the HyE YouTube client talks to:
the video proxy, the recommendation engine, the contact directory, the file
store, and the las2peer login endpoint. Responses are canned or lightly
templated, with just enough session and consent state to exercise a client
end-to-end without the real backends.

Running hyemockd with no arguments starts the server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Bare "hyemockd" behaves like "hyemockd serve".
	addServeFlags(rootCmd)
	rootCmd.RunE = serveCmd.RunE
}

// Execute runs the CLI with the given build information.
func Execute(info BuildInfo) error {
	if info.Version != "" {
		buildInfo = info
	}
	return rootCmd.Execute()
}
