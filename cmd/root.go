package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var asJSON bool

	rootCmd := &cobra.Command{
		Use:           "ppai",
		Short:         "PropertyPro AI client (ppai): properties, clients, deals and AI from the terminal",
		Long:          "ppai talks to the PropertyPro backend: sign in, manage listings, leads and transactions, run marketing and social tasks, and send prompts to the AI command center.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Render JSON output")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		app.asJSON = asJSON
		app.presenter = newPresenter(cmd.OutOrStdout(), asJSON)
		if err := app.container.Session.Restore(cmd.Context()); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		if sessionRequired(cmd) {
			return app.requireSession()
		}
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newDashboardCmd(app),
		newPropertyCmd(app),
		newClientCmd(app),
		newTransactionCmd(app),
		newMarketingCmd(app),
		newSocialCmd(app),
		newWorkflowCmd(app),
		newAskCmd(app),
	)

	return rootCmd
}
