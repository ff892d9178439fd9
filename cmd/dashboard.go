package cmd

import (
	"github.com/propertypro/ppai/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var days int
	var top int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Refresh every store and show a summary",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := app.container
			// Each store records its own failure; the dashboard shows it next to the section.
			err := app.fetch(cmd, "Refreshing dashboard...", c.RefreshAll,
				propertiesSource(c.Properties), clientsSource(c.Clients), transactionsSource(c.Transactions))
			if err != nil {
				app.log.WithError(err).Warn("dashboard refresh incomplete")
			}

			now := app.now()
			return app.presenter.Dashboard(dashboard.Snapshot{
				Session:      c.Session.State(),
				Properties:   c.Properties.State(),
				Clients:      c.Clients.State(),
				Transactions: c.Transactions.State(),
				Deadlines:    c.Transactions.UpcomingDeadlines(days, now),
			}, dashboard.RenderOptions{
				Now:          now,
				DeadlineDays: days,
				TopClients:   top,
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Deadline horizon in days")
	cmd.Flags().IntVar(&top, "top", 5, "Number of top-scored clients to show")

	return cmd
}
