// Package cmd wires the wallboard command line.
package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xiaot623/wallboard/internal/client"
	"github.com/xiaot623/wallboard/internal/config"
	"github.com/xiaot623/wallboard/internal/display"
)

type rootOptions struct {
	serverURL string
	noColor   bool
}

// NewRootCommand builds the wallboard command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "wallboard",
		Short:         "Call-center agent status wallboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Printf("Error loading .env file, skipping: %v", err)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.serverURL, "server", "", "wallboard server URL (default $WALLBOARD_URL or http://localhost:3001)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newServeCommand(),
		newAgentsCommand(opts),
		newStatsCommand(opts),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newSetStatusCommand(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		display.NewFormatter(root.ErrOrStderr(), false).PrintError(err)
		os.Exit(1)
	}
}

func (o *rootOptions) client() *client.Client {
	url := o.serverURL
	if url == "" {
		url = config.Load().ServerURL
	}
	return client.NewClient(url)
}

func (o *rootOptions) formatter(cmd *cobra.Command) *display.Formatter {
	return display.NewFormatter(cmd.OutOrStdout(), o.noColor)
}
