package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luckydata/govlens/internal/app"
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export lineage reports (CSV, JSON, HTML)",
	Long: `Flatten the lineage snapshot and write the report artifacts.

Default output directory: ./govlens-out/`,
	Run: func(cmd *cobra.Command, args []string) {
		config.Headless = true
		if err := app.Run(config); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		out := config.OutputDir
		if out == "" {
			out = "govlens-out"
		}
		fmt.Println("\n导出完成:")
		fmt.Printf("   CSV:  ./%s/lineage_report.csv\n", out)
		fmt.Printf("   JSON: ./%s/lineage_report.json\n", out)
		fmt.Printf("   HTML: ./%s/dashboard.html\n", out)
	},
}
