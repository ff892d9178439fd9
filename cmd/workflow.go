package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkflowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Start and inspect automation package runs",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
	}

	cmd.AddCommand(
		newWorkflowRunsCmd(app),
		newWorkflowRunCmd(app),
		newWorkflowStartCmd(app),
	)

	return cmd
}

func newWorkflowRunsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List workflow runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := app.container.Workflows.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(runs))
			for _, run := range runs {
				lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s", run.ID, run.PackageName, run.Status, run.StartedAt.Format(time.RFC3339)))
			}
			if len(lines) == 0 {
				lines = append(lines, "No workflow runs.")
			}
			return app.presenter.Result(runs, strings.Join(lines, "\n"))
		},
	}
}

func newWorkflowRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <id>",
		Short: "Show one workflow run with its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := app.container.Workflows.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("workflow run %s not found", args[0])
			}
			return app.presenter.Result(run, runSummary(*run))
		},
	}
}

func newWorkflowStartCmd(app *app) *cobra.Command {
	var packagePath string
	var contextJSON string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a run of an automation package definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkg, err := readPackage(cmd.InOrStdin(), packagePath)
			if err != nil {
				return err
			}

			var runContext map[string]any
			if contextJSON != "" {
				if err := json.Unmarshal([]byte(contextJSON), &runContext); err != nil {
					return &domain.ValidationError{Field: "context", Message: "expected a JSON object: " + err.Error()}
				}
			}

			run, err := app.container.Workflows.StartRun(cmd.Context(), pkg, runContext)
			if err != nil {
				return err
			}
			return app.presenter.Result(run, runSummary(run))
		},
	}

	cmd.Flags().StringVar(&packagePath, "package", "", "Package definition JSON file, - for stdin")
	cmd.Flags().StringVar(&contextJSON, "context", "", "Run context as a JSON object")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

func readPackage(stdin io.Reader, path string) (domain.PackageDefinition, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read package definition: %w", err)
	}
	if !json.Valid(data) {
		return nil, &domain.ValidationError{Field: "package", Message: "package definition is not valid JSON"}
	}
	return domain.PackageDefinition(data), nil
}

func runSummary(run domain.WorkflowRun) string {
	lines := []string{fmt.Sprintf("Run %s (%s): %s", run.ID, run.PackageName, run.Status)}
	for _, step := range run.Steps {
		lines = append(lines, fmt.Sprintf("  [%s] %s", step.Status, step.Title))
	}
	return strings.Join(lines, "\n")
}
