package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

var (
	BuildName = "allurecheck"
	BuildTag  string
	BuildRev  string
)

var versionCmd = &cobra.Command{
	Use:          "version",
	Long:         "Print the allurecheck version, vcs revision and platform",
	Short:        "actual version",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version())
		return err
	},
}

func init() {
	if info, available := debug.ReadBuildInfo(); available {
		readBuildInfo(info)
	}

	rootCmd.AddCommand(versionCmd)
}

// readBuildInfo fills whatever -ldflags left empty.
func readBuildInfo(info *debug.BuildInfo) {
	if BuildTag == "" {
		BuildTag = info.Main.Version
	}

	if BuildRev != "" {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			BuildRev = s.Value[:7]
		}
	}
}

func version() string {
	tag := strings.TrimPrefix(BuildTag, "v")
	if tag == "" {
		tag = "(devel)"
	}

	if BuildRev != "" {
		tag += " (" + BuildRev + ")"
	}

	return fmt.Sprintf("%s version %s %s/%s", BuildName, tag, runtime.GOOS, runtime.GOARCH)
}
