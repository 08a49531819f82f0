package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/tirumala-planners/site-backend/cmd/http"
	systemcmd "github.com/tirumala-planners/site-backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "planners",
	Short: "Backend for the Tirumala Planners website.",
	Long: `Backend for the Tirumala Planners website.
It stores quote requests from the public contact form, notifies the
owner by email, and serves the brochure/elevation/plan asset catalog.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
