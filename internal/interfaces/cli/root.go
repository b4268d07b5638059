package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	ConfigPath  string
	ShowVersion bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "zonevault",
	Short: "DNS zone backup tool",
	Long:  "Zonevault exports every hosted zone of a DNS provider to versioned object storage for point-in-time recovery.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if ShowVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "zonevault.yaml", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&ShowVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newBackupCommand())
	rootCmd.AddCommand(newZonesCommand())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
