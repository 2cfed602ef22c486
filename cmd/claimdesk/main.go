// Command claimdesk runs the service-claim desk HTTP API and a few
// inspection helpers around the claim workflow.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/app"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/workflow"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "claimdesk: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "claimdesk",
		Short:        "Service claim lifecycle desk",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newServeCmd(),
		newMilestonesCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
					return fmt.Errorf("set config path: %w", err)
				}
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (overrides CONFIG_PATH)")
	return cmd
}

func newMilestonesCmd() *cobra.Command {
	var slaRaw string
	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Print the claim workflow stages with their roles and SLA limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			sla, err := workflow.ParseSLAPolicy(slaRaw)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tSTAGE\tSTATUS\tROLES\tSLA")
			for i, m := range domain.Milestones() {
				roles := make([]string, len(m.Roles))
				for j, r := range m.Roles {
					roles[j] = r.String()
				}
				limit := "-"
				if d, ok := sla.Max(m.Name); ok {
					limit = d.String()
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, m.Name, m.TargetStatus, strings.Join(roles, ","), limit)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&slaRaw, "sla", "", `SLA overrides, e.g. "Claim Created=12h"`)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
