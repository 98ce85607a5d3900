package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luckydata/govlens/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s [%s]\n", version.AppName, version.Current, version.License)
	},
}
