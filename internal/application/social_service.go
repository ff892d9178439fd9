package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
)

const socialPath = "/api/v1/social"

type SocialService struct {
	api ports.APIClient
}

func NewSocialService(api ports.APIClient) *SocialService {
	return &SocialService{api: api}
}

func (s *SocialService) Connections(ctx context.Context) ([]domain.PlatformConnection, error) {
	connections := []domain.PlatformConnection{}
	if err := s.get(ctx, "/connections", &connections); err != nil {
		return nil, fmt.Errorf("list social connections: %w", err)
	}
	return connections, nil
}

func (s *SocialService) Connect(ctx context.Context, platform domain.Platform) (domain.PlatformConnection, error) {
	return s.toggle(ctx, "/connect", platform)
}

func (s *SocialService) Disconnect(ctx context.Context, platform domain.Platform) (domain.PlatformConnection, error) {
	return s.toggle(ctx, "/disconnect", platform)
}

func (s *SocialService) toggle(ctx context.Context, action string, platform domain.Platform) (domain.PlatformConnection, error) {
	if !platform.Valid() {
		return domain.PlatformConnection{}, &domain.ValidationError{Field: "platform", Message: "unsupported platform " + string(platform)}
	}
	var connection domain.PlatformConnection
	if err := s.post(ctx, action, map[string]any{"platform": platform}, &connection); err != nil {
		return domain.PlatformConnection{}, fmt.Errorf("%s %s: %w", strings.TrimPrefix(action, "/"), platform, err)
	}
	return connection, nil
}

// PostNow publishes immediately and returns the backend post id.
func (s *SocialService) PostNow(ctx context.Context, request domain.PostRequest) (string, error) {
	if err := validatePost(request); err != nil {
		return "", err
	}
	request.ScheduledAt = nil

	var created struct {
		ID string `json:"id"`
	}
	if err := s.post(ctx, "/post", request, &created); err != nil {
		return "", fmt.Errorf("publish social post: %w", err)
	}
	return created.ID, nil
}

func (s *SocialService) Schedule(ctx context.Context, request domain.PostRequest) (domain.ScheduledPost, error) {
	if err := validatePost(request); err != nil {
		return domain.ScheduledPost{}, err
	}
	if request.ScheduledAt == nil || request.ScheduledAt.IsZero() {
		return domain.ScheduledPost{}, &domain.ValidationError{Field: "scheduledAt", Message: "schedule time is required"}
	}

	var scheduled domain.ScheduledPost
	if err := s.post(ctx, "/schedule", request, &scheduled); err != nil {
		return domain.ScheduledPost{}, fmt.Errorf("schedule social post: %w", err)
	}
	return scheduled, nil
}

func (s *SocialService) Scheduled(ctx context.Context) ([]domain.ScheduledPost, error) {
	posts := []domain.ScheduledPost{}
	if err := s.get(ctx, "/scheduled", &posts); err != nil {
		return nil, fmt.Errorf("list scheduled posts: %w", err)
	}
	return posts, nil
}

func validatePost(request domain.PostRequest) error {
	if strings.TrimSpace(request.Caption) == "" {
		return &domain.ValidationError{Field: "caption", Message: "caption is required"}
	}
	if len(request.Platforms) == 0 {
		return &domain.ValidationError{Field: "platforms", Message: "at least one platform is required"}
	}
	for _, platform := range request.Platforms {
		if !platform.Valid() {
			return &domain.ValidationError{Field: "platforms", Message: "unsupported platform " + string(platform)}
		}
	}
	return nil
}

func (s *SocialService) get(ctx context.Context, path string, out any) error {
	response, err := s.api.Get(ctx, socialPath+path)
	if err != nil {
		return err
	}
	return response.Decode(out)
}

func (s *SocialService) post(ctx context.Context, path string, body, out any) error {
	response, err := s.api.Post(ctx, socialPath+path, body)
	if err != nil {
		return err
	}
	return response.Decode(out)
}
