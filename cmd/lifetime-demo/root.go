package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/lifetime/pkg/logging"
)

var (
	version = "dev"

	verbosity int

	rootCmd = &cobra.Command{
		Use:   "lifetime-demo",
		Short: "Plays a host component using a resource-lifetime registry",
		Long: `lifetime-demo simulates one component lifetime: it creates a registry,
watches a mix of streams, subscriptions, and disposables (one of them
deliberately broken), restarts a named subscription, and then destroys the
component, reporting what the teardown sweep released and what failed.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDemo,
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Verbosity flag for logging
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lifetime-demo version %s\n", version)
	},
}
