package cmd

import (
	"fmt"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newTransactionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"transactions", "deal"},
		Short:   "Track transactions and milestones",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
	}

	cmd.AddCommand(
		newTransactionListCmd(app),
		newTransactionCreateCmd(app),
		newTransactionStatusCmd(app),
		newTransactionDeadlinesCmd(app),
	)

	return cmd
}

func (a *app) fetchTransactions(cmd *cobra.Command) error {
	return a.fetch(cmd, "Fetching transactions...", a.container.Transactions.Fetch, transactionsSource(a.container.Transactions))
}

func newTransactionListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.fetchTransactions(cmd); err != nil {
				return err
			}
			return app.presenter.Transactions(app.container.Transactions.State().Items)
		},
	}
}

func newTransactionCreateCmd(app *app) *cobra.Command {
	var propertyID string
	var transactionType string
	var offer float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a transaction on a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transaction, err := app.container.Transactions.Create(cmd.Context(), domain.TransactionDraft{
				PropertyID:      domain.PropertyID(propertyID),
				TransactionType: transactionType,
				OfferPrice:      changedFloat(cmd, "offer", offer),
			})
			if err != nil {
				return err
			}
			return app.presenter.Result(transaction, fmt.Sprintf("Created transaction %s on property %s (%s)", transaction.ID, transaction.PropertyID, transaction.Status))
		},
	}

	cmd.Flags().StringVar(&propertyID, "property", "", "Property ID")
	cmd.Flags().StringVar(&transactionType, "type", "sale", "Transaction type, for example sale or rental")
	cmd.Flags().Float64Var(&offer, "offer", 0, "Offer price in AED")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func newTransactionStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a transaction status: pending, in_progress, closed, canceled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			transaction, err := app.container.Transactions.UpdateStatus(cmd.Context(), domain.TransactionID(args[0]), domain.TransactionStatus(args[1]))
			if err != nil {
				return err
			}
			return app.presenter.Result(transaction, fmt.Sprintf("Transaction %s is now %s", transaction.ID, transaction.Status))
		},
	}
}

func newTransactionDeadlinesCmd(app *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "List open milestones due soon, overdue ones included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.fetchTransactions(cmd); err != nil {
				return err
			}
			now := app.now()
			return app.presenter.Deadlines(app.container.Transactions.UpcomingDeadlines(days, now), now)
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Horizon in days")

	return cmd
}
