package application

import (
	"context"
	"fmt"
	"net/url"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
)

const workflowRunsPath = "/api/v1/workflows/runs"

type WorkflowService struct {
	api ports.APIClient
}

func NewWorkflowService(api ports.APIClient) *WorkflowService {
	return &WorkflowService{api: api}
}

func (s *WorkflowService) ListRuns(ctx context.Context) ([]domain.WorkflowRun, error) {
	response, err := s.api.Get(ctx, workflowRunsPath)
	if err != nil {
		return nil, fmt.Errorf("list workflow runs: %w", err)
	}
	runs := []domain.WorkflowRun{}
	if err := response.Decode(&runs); err != nil {
		return nil, fmt.Errorf("list workflow runs: %w", err)
	}
	return runs, nil
}

// GetRun returns nil when the backend answers with an empty body.
func (s *WorkflowService) GetRun(ctx context.Context, id string) (*domain.WorkflowRun, error) {
	response, err := s.api.Get(ctx, workflowRunsPath+"/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("get workflow run %s: %w", id, err)
	}
	if response.Empty() {
		return nil, nil
	}
	var run domain.WorkflowRun
	if err := response.Decode(&run); err != nil {
		return nil, fmt.Errorf("get workflow run %s: %w", id, err)
	}
	return &run, nil
}

func (s *WorkflowService) StartRun(ctx context.Context, pkg domain.PackageDefinition, runContext map[string]any) (domain.WorkflowRun, error) {
	if len(pkg) == 0 {
		return domain.WorkflowRun{}, &domain.ValidationError{Field: "pkg", Message: "package definition is required"}
	}

	body := map[string]any{"pkg": pkg}
	if runContext != nil {
		body["context"] = runContext
	}
	response, err := s.api.Post(ctx, workflowRunsPath, body)
	if err != nil {
		return domain.WorkflowRun{}, fmt.Errorf("start workflow run: %w", err)
	}
	var run domain.WorkflowRun
	if err := response.Decode(&run); err != nil {
		return domain.WorkflowRun{}, fmt.Errorf("start workflow run: %w", err)
	}
	return run, nil
}
