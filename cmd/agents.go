package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xiaot623/wallboard/internal/domain"
)

func newAgentsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List agents and their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, err := opts.client().ListAgents(cmd.Context())
			if err != nil {
				return err
			}
			opts.formatter(cmd).PrintAgents(agents)
			return nil
		},
	}
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := opts.client().DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			opts.formatter(cmd).PrintStats(stats)
			return nil
		},
	}
}

func newLoginCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login CODE NAME",
		Short: "Log an agent in (creates it if unknown)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			opts.formatter(cmd).PrintAgent(res.Message, res.Agent)
			return nil
		},
	}
}

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout CODE",
		Short: "Log an agent out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().Logout(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			opts.formatter(cmd).PrintAgent(res.Message, res.Agent)
			return nil
		},
	}
}

func newSetStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status CODE STATUS",
		Short: `Change an agent's status ("Available", "Active", "Wrap Up", "Not Ready", "Offline")`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().ChangeStatus(cmd.Context(), args[0], domain.AgentStatus(args[1]))
			if err != nil {
				return err
			}
			opts.formatter(cmd).PrintAgent(res.Message, res.Agent)
			return nil
		},
	}
}
