package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luckydata/govlens/internal/app"
	"github.com/luckydata/govlens/pkg/version"
)

var (
	cfgFile string
	config  app.Config
)

var rootCmd = &cobra.Command{
	Use:   "govlens",
	Short: "数据治理控制台",
	Long: `GovLens - Data Governance Console

Catalog. Lineage. Quality.`,
	Version: version.Current,
	Run: func(cmd *cobra.Command, args []string) {
		config.Headless = false
		if err := app.Run(config); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.govlens.yaml)")
	rootCmd.PersistentFlags().StringVar(&config.DatasetPath, "dataset", "", "Path to a snapshot YAML file (default: built-in demo data)")
	rootCmd.PersistentFlags().StringVar(&config.RulesFile, "rules", "", "Path to a dynamic quality rules YAML file")
	rootCmd.PersistentFlags().StringVar(&config.OutputDir, "output", "", "Export output directory (default ./govlens-out)")
	rootCmd.PersistentFlags().StringVar(&config.OTLPEndpoint, "otel-endpoint", "", "OTLP trace endpoint (host:port)")
	rootCmd.PersistentFlags().BoolVar(&config.JSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderFutureGlassHelp(cmd)
	})

	rootCmd.AddCommand(ExportCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".govlens.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("GOVLENS")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	if config.DatasetPath == "" {
		config.DatasetPath = viper.GetString("dataset")
	}
	if config.RulesFile == "" {
		config.RulesFile = viper.GetString("rules")
	}
	if config.OutputDir == "" {
		config.OutputDir = viper.GetString("output")
	}
	if config.OTLPEndpoint == "" {
		config.OTLPEndpoint = viper.GetString("otel-endpoint")
	}
}

func renderFutureGlassHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("GOVLENS %s [Future-Glass]", version.Current)))
	fmt.Println("数据治理控制台：资产目录、血缘分析、接口质量监控。")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
