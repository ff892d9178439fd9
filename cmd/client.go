package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage clients and leads",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
	}

	cmd.AddCommand(
		newClientListCmd(app),
		newClientAddCmd(app),
		newClientUpdateCmd(app),
		newClientDeleteCmd(app),
		newClientLogCmd(app),
		newClientStatusCmd(app),
	)

	return cmd
}

func (a *app) fetchClients(cmd *cobra.Command) error {
	return a.fetch(cmd, "Fetching clients...", a.container.Clients.Fetch, clientsSource(a.container.Clients))
}

func newClientListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.fetchClients(cmd); err != nil {
				return err
			}
			return app.presenter.Clients(app.container.Clients.State().Items)
		},
	}
}

type clientFlags struct {
	name   string
	email  string
	phone  string
	score  float64
	status string
	notes  string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Client name")
	cmd.Flags().StringVar(&f.email, "email", "", "Client email")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Client phone")
	cmd.Flags().Float64Var(&f.score, "score", 0, "Lead score (0-100)")
	cmd.Flags().StringVar(&f.status, "status", "", "Lead status: new, contacted, qualified, nurturing, converted, archived")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
}

func newClientAddCmd(app *app) *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.container.Clients.Add(cmd.Context(), domain.ClientDraft{
				Name:      flags.name,
				Email:     flags.email,
				Phone:     flags.phone,
				LeadScore: changedFloat(cmd, "score", flags.score),
				Status:    domain.LeadStatus(flags.status),
				Notes:     flags.notes,
			})
			if err != nil {
				return err
			}
			return app.presenter.Result(client, fmt.Sprintf("Added client %s (%s)", client.ID, client.Name))
		},
	}

	flags.register(cmd)

	return cmd
}

func newClientUpdateCmd(app *app) *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.ClientPatch{
				Name:      changedString(cmd, "name", flags.name),
				Email:     changedString(cmd, "email", flags.email),
				Phone:     changedString(cmd, "phone", flags.phone),
				Notes:     changedString(cmd, "notes", flags.notes),
				LeadScore: changedFloat(cmd, "score", flags.score),
			}
			if cmd.Flags().Changed("status") {
				status, ok := domain.ParseLeadStatus(flags.status)
				if !ok {
					return &domain.ValidationError{Field: "status", Message: "unsupported lead status " + flags.status}
				}
				patch.Status = &status
			}

			// The update body keeps fields the patch leaves out, so load the current record first.
			if err := app.fetchClients(cmd); err != nil {
				return err
			}
			client, err := app.container.Clients.Update(cmd.Context(), domain.ClientID(args[0]), patch)
			if err != nil {
				return err
			}
			return app.presenter.Result(client, fmt.Sprintf("Updated client %s (%s)", client.ID, client.Name))
		},
	}

	flags.register(cmd)

	return cmd
}

func newClientDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ClientID(args[0])
			if err := app.container.Clients.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return app.presenter.Result(map[string]string{"deleted": string(id)}, fmt.Sprintf("Deleted client %s", id))
		},
	}
}

func newClientLogCmd(app *app) *cobra.Command {
	var kind string
	var content string
	var at string

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Record a call, email, sms or meeting with a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var timestamp time.Time
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return &domain.ValidationError{Field: "at", Message: "expected RFC3339 time, got " + at}
				}
				timestamp = parsed
			}

			if err := app.fetchClients(cmd); err != nil {
				return err
			}

			id := domain.ClientID(args[0])
			entry, err := app.container.Clients.LogCommunication(cmd.Context(), domain.CommunicationDraft{
				ClientID:  id,
				Type:      domain.CommunicationType(kind),
				Content:   content,
				Timestamp: timestamp,
			})
			if err != nil {
				return err
			}

			summary := fmt.Sprintf("Logged %s with client %s", entry.Type, id)
			if client, err := app.container.Clients.Find(id); err == nil {
				summary += fmt.Sprintf(" (score %.0f)", client.LeadScore)
			}
			return app.presenter.Result(entry, summary)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Communication type: call, email, sms, meeting")
	cmd.Flags().StringVar(&content, "content", "", "What was discussed")
	cmd.Flags().StringVar(&at, "at", "", "When it happened, RFC3339 (default: now)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newClientStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a client to another lead status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.fetchClients(cmd); err != nil {
				return err
			}

			client, err := app.container.Clients.SetLeadStatus(cmd.Context(), domain.ClientID(args[0]), domain.LeadStatus(strings.TrimSpace(args[1])))
			if err != nil {
				return err
			}
			return app.presenter.Result(client, fmt.Sprintf("Client %s is now %s", client.ID, client.Status))
		},
	}
}
