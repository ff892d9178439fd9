package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the PropertyPro backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			session, err := app.container.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			return app.presenter.Result(newSessionView(session), "Signed in as "+userLabel(session.User))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.container.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			return app.presenter.Result(newSessionView(app.container.Session.State()), "Signed out")
		},
	}
}

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			session := app.container.Session.State()
			return app.presenter.Result(newSessionView(session), sessionSummary(session, app.now()))
		},
	}

	cmd.AddCommand(
		newSessionRefreshCmd(app),
		newSessionPreferencesCmd(app),
	)

	return cmd
}

func newSessionRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			session, err := app.container.Auth.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			return app.presenter.Result(newSessionView(session), "Session refreshed\n"+sessionSummary(session, app.now()))
		},
	}
}

func newSessionPreferencesCmd(app *app) *cobra.Command {
	var darkMode bool
	var locale string

	cmd := &cobra.Command{
		Use:   "preferences",
		Short: "Update display preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			preferences, err := app.container.Session.UpdatePreferences(cmd.Context(), domain.PreferencesPatch{
				DarkMode: changedBool(cmd, "dark-mode", darkMode),
				Locale:   changedString(cmd, "locale", locale),
			})
			if err != nil {
				return err
			}
			return app.presenter.Result(preferences, preferencesSummary(preferences))
		},
	}

	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Enable dark mode")
	cmd.Flags().StringVar(&locale, "locale", "", "Locale such as en-US or ar-AE")

	return cmd
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func userLabel(user *domain.UserProfile) string {
	if user == nil {
		return "unknown user"
	}
	return fmt.Sprintf("%s (%s)", user.Name, user.Role)
}

func sessionSummary(session domain.Session, now time.Time) string {
	if !session.Authenticated() {
		return "not signed in"
	}

	lines := []string{"user: " + userLabel(session.User)}
	if session.User != nil && session.User.Email != "" {
		lines = append(lines, "email: "+session.User.Email)
	}
	switch {
	case session.ExpiresAt.IsZero():
	case session.Expired(now):
		lines = append(lines, "expires: expired at "+session.ExpiresAt.Local().Format(time.RFC1123))
	default:
		lines = append(lines, "expires: "+session.ExpiresAt.Local().Format(time.RFC1123))
	}
	lines = append(lines, preferencesSummary(session.Preferences))
	return strings.Join(lines, "\n")
}

func preferencesSummary(preferences domain.Preferences) string {
	mode := "off"
	if preferences.DarkMode {
		mode = "on"
	}
	return fmt.Sprintf("locale: %s, dark mode: %s", preferences.Locale, mode)
}
