package cmd

import (
	"context"
	"fmt"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

// sessionRequiredAnnotation marks a command group whose subcommands need a signed-in session.
const sessionRequiredAnnotation = "ppai/session-required"

var errLoginRequired = fmt.Errorf("%w: run `ppai login` first", domain.ErrNotAuthenticated)

func sessionRequired(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[sessionRequiredAnnotation] == "true" {
			return true
		}
	}
	return false
}

func (a *app) requireSession() error {
	if !a.container.Session.Authenticated() {
		return errLoginRequired
	}
	return nil
}

// fetch runs a backend call behind a progress view on stderr that follows the fetch slice of
// each source. JSON output skips the view.
func (a *app) fetch(cmd *cobra.Command, label string, call func(context.Context) error, sources ...fetchSource) error {
	if a.asJSON {
		return call(cmd.Context())
	}
	return runFetchProgress(cmd.Context(), cmd.ErrOrStderr(), label, sources, call)
}

func changedString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func changedFloat(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func changedBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
