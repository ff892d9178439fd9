package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newSocialCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "social",
		Short: "Connect social platforms and publish posts",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
	}

	cmd.AddCommand(
		newSocialConnectionsCmd(app),
		newSocialToggleCmd(app, "connect", "Connect a platform: facebook, instagram, linkedin", app.container.Social.Connect),
		newSocialToggleCmd(app, "disconnect", "Disconnect a platform", app.container.Social.Disconnect),
		newSocialPostCmd(app),
		newSocialScheduleCmd(app),
		newSocialScheduledCmd(app),
	)

	return cmd
}

func newSocialConnectionsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connections",
		Short: "Show platform connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			connections, err := app.container.Social.Connections(cmd.Context())
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(connections))
			for _, connection := range connections {
				lines = append(lines, connectionLine(connection))
			}
			if len(lines) == 0 {
				lines = append(lines, "No platforms.")
			}
			return app.presenter.Result(connections, strings.Join(lines, "\n"))
		},
	}
}

func newSocialToggleCmd(app *app, use, short string, toggle func(context.Context, domain.Platform) (domain.PlatformConnection, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <platform>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connection, err := toggle(cmd.Context(), domain.Platform(strings.ToLower(args[0])))
			if err != nil {
				return err
			}
			return app.presenter.Result(connection, connectionLine(connection))
		},
	}
}

func connectionLine(connection domain.PlatformConnection) string {
	state := "disconnected"
	if connection.Connected {
		state = "connected"
		if connection.AccountName != "" {
			state += " as " + connection.AccountName
		}
	}
	return fmt.Sprintf("%s: %s", connection.Platform, state)
}

type postFlags struct {
	caption   string
	imageURL  string
	platforms []string
}

func (f *postFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.caption, "caption", "", "Post caption")
	cmd.Flags().StringVar(&f.imageURL, "image", "", "Image URL")
	cmd.Flags().StringSliceVar(&f.platforms, "platform", nil, "Target platform, repeatable")
}

func (f *postFlags) request() domain.PostRequest {
	platforms := make([]domain.Platform, 0, len(f.platforms))
	for _, platform := range f.platforms {
		platforms = append(platforms, domain.Platform(strings.ToLower(strings.TrimSpace(platform))))
	}
	return domain.PostRequest{
		Caption:   f.caption,
		ImageURL:  f.imageURL,
		Platforms: platforms,
	}
}

func newSocialPostCmd(app *app) *cobra.Command {
	var flags postFlags

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a post now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := app.container.Social.PostNow(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			return app.presenter.Result(map[string]string{"id": id}, "Published post "+id)
		},
	}

	flags.register(cmd)

	return cmd
}

func newSocialScheduleCmd(app *app) *cobra.Command {
	var flags postFlags
	var at string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scheduledAt, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return &domain.ValidationError{Field: "at", Message: "expected RFC3339 time, got " + at}
			}

			request := flags.request()
			request.ScheduledAt = &scheduledAt
			post, err := app.container.Social.Schedule(cmd.Context(), request)
			if err != nil {
				return err
			}
			return app.presenter.Result(post, fmt.Sprintf("Scheduled post %s for %s", post.ID, post.ScheduledAt.Format(time.RFC3339)))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&at, "at", "", "Publish time, RFC3339")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newSocialScheduledCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scheduled",
		Short: "List scheduled posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			posts, err := app.container.Social.Scheduled(cmd.Context())
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(posts))
			for _, post := range posts {
				lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s", post.ID, post.ScheduledAt.Format(time.RFC3339), joinPlatforms(post.Platforms), post.Caption))
			}
			if len(lines) == 0 {
				lines = append(lines, "No scheduled posts.")
			}
			return app.presenter.Result(posts, strings.Join(lines, "\n"))
		},
	}
}

func joinPlatforms(platforms []domain.Platform) string {
	names := make([]string, 0, len(platforms))
	for _, platform := range platforms {
		names = append(names, string(platform))
	}
	return strings.Join(names, ",")
}
