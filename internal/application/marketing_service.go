package application

import (
	"context"
	"fmt"
	"net/url"

	"github.com/propertypro/ppai/internal/adapters/payload"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
)

const (
	templatesPath   = "/api/v1/marketing/templates"
	campaignsPath   = "/api/v1/marketing/campaigns"
	fullPackagePath = "/api/v1/marketing/campaigns/full-package"
)

type MarketingService struct {
	api ports.APIClient
}

func NewMarketingService(api ports.APIClient) *MarketingService {
	return &MarketingService{api: api}
}

// Templates lists marketing templates, optionally narrowed to one category.
func (s *MarketingService) Templates(ctx context.Context, category string) ([]domain.TemplateSummary, error) {
	path := templatesPath
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}

	response, err := s.api.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list marketing templates: %w", err)
	}
	templates := []domain.TemplateSummary{}
	if err := response.Decode(&templates); err != nil {
		return nil, fmt.Errorf("list marketing templates: %w", err)
	}
	return templates, nil
}

func (s *MarketingService) CreateCampaign(ctx context.Context, request domain.CampaignRequest) (domain.CampaignResult, error) {
	if !request.CampaignType.Valid() {
		return domain.CampaignResult{}, &domain.ValidationError{Field: "campaign_type", Message: "unsupported campaign type " + string(request.CampaignType)}
	}
	if request.PropertyID <= 0 {
		return domain.CampaignResult{}, &domain.ValidationError{Field: "property_id", Message: "property id is required"}
	}

	response, err := s.api.Post(ctx, campaignsPath, payload.CampaignBody(request))
	if err != nil {
		return domain.CampaignResult{}, fmt.Errorf("create campaign: %w", err)
	}
	return payload.CampaignResult(response.Body), nil
}

func (s *MarketingService) CreateFullPackage(ctx context.Context, request domain.PackageRequest) (domain.PackageResult, error) {
	if request.PropertyID <= 0 {
		return domain.PackageResult{}, &domain.ValidationError{Field: "property_id", Message: "property id is required"}
	}

	response, err := s.api.Post(ctx, fullPackagePath, payload.PackageBody(request))
	if err != nil {
		return domain.PackageResult{}, fmt.Errorf("create marketing package: %w", err)
	}
	return payload.PackageResult(response.Body), nil
}
