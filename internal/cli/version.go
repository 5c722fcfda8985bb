package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ratersync/internal/compliance"
	"ratersync/pkg/contracts"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and supported standards",
	// The root's PersistentPreRunE needs a config file; version should
	// work without one.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		info := contracts.GetVersionInfo()
		fmt.Println(contracts.GetVersionString())
		fmt.Printf("Build:       %s (%s)\n", info.BuildTime, info.GitCommit)
		fmt.Printf("Go:          %s %s/%s\n", info.GoVersion, info.OS, info.Architecture)
		fmt.Printf("Data format: %s\n", info.DataFormat)
		fmt.Printf("Standards:   %v\n", compliance.Versions())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
