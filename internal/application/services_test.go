package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/propertypro/ppai/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketingServiceTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		path     string
	}{
		{name: "all", path: "/api/v1/marketing/templates"},
		{name: "category", category: "luxury villas", path: "/api/v1/marketing/templates?category=luxury+villas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := mocks.NewMockAPIClient(t)
			api.EXPECT().Get(mockAnyContext(), tt.path).
				Return(jsonResponse(`[{"id":3,"name":"Just Listed","category":"postcard","type":"print","dubai_specific":true}]`), nil)

			templates, err := NewMarketingService(api).Templates(context.Background(), tt.category)
			require.NoError(t, err)
			assert.Equal(t, []domain.TemplateSummary{{ID: 3, Name: "Just Listed", Category: "postcard", Type: "print", DubaiSpecific: true}}, templates)
		})
	}
}

func TestMarketingServiceCreateCampaign(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAPIClient(t)
	api.EXPECT().Post(mockAnyContext(), campaignsPath, map[string]any{
		"property_id":           int64(42),
		"campaign_type":         "email_blast",
		"auto_generate_content": true,
	}).Return(jsonResponse(`{"campaign_id":77,"status":"draft","message":"Campaign created","campaign":{"subject":"New listing"}}`), nil)

	result, err := NewMarketingService(api).CreateCampaign(context.Background(), domain.CampaignRequest{
		PropertyID:   42,
		CampaignType: domain.CampaignEmailBlast,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), result.CampaignID)
	assert.Equal(t, "New listing", result.Campaign["subject"])

	_, err = NewMarketingService(api).CreateCampaign(context.Background(), domain.CampaignRequest{PropertyID: 42, CampaignType: "billboard"})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestMarketingServiceCreateFullPackage(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAPIClient(t)
	api.EXPECT().Post(mockAnyContext(), fullPackagePath, map[string]any{
		"property_id":       int64(42),
		"include_postcards": true,
		"include_email":     true,
		"include_social":    true,
		"include_flyers":    false,
	}).Return(jsonResponse(`{"package_id":"pkg-1","message":"ok","package":{"property_id":42,"campaigns":{"email":5}}}`), nil)

	result, err := NewMarketingService(api).CreateFullPackage(context.Background(), domain.PackageRequest{PropertyID: 42})
	require.NoError(t, err)
	assert.Equal(t, "pkg-1", result.PackageID)
	assert.Equal(t, map[string]int64{"email": 5}, result.Campaigns)
}

func TestSocialServiceConnections(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAPIClient(t)
	api.EXPECT().Get(mockAnyContext(), "/api/v1/social/connections").
		Return(jsonResponse(`[{"platform":"instagram","connected":true,"accountName":"@dxbhomes"}]`), nil)
	api.EXPECT().Post(mockAnyContext(), "/api/v1/social/connect", map[string]any{"platform": domain.PlatformLinkedIn}).
		Return(jsonResponse(`{"platform":"linkedin","connected":true}`), nil)
	api.EXPECT().Post(mockAnyContext(), "/api/v1/social/disconnect", map[string]any{"platform": domain.PlatformFacebook}).
		Return(jsonResponse(`{"platform":"facebook","connected":false}`), nil)

	service := NewSocialService(api)

	connections, err := service.Connections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.PlatformConnection{{Platform: domain.PlatformInstagram, Connected: true, AccountName: "@dxbhomes"}}, connections)

	connected, err := service.Connect(context.Background(), domain.PlatformLinkedIn)
	require.NoError(t, err)
	assert.True(t, connected.Connected)

	disconnected, err := service.Disconnect(context.Background(), domain.PlatformFacebook)
	require.NoError(t, err)
	assert.False(t, disconnected.Connected)

	_, err = service.Connect(context.Background(), "myspace")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestSocialServicePosting(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	api := mocks.NewMockAPIClient(t)
	api.EXPECT().Post(mockAnyContext(), "/api/v1/social/post", domain.PostRequest{Caption: "Open house", Platforms: []domain.Platform{domain.PlatformInstagram}}).
		Return(jsonResponse(`{"id":"post-1"}`), nil)
	api.EXPECT().Post(mockAnyContext(), "/api/v1/social/schedule", mockAnyContext()).
		Return(jsonResponse(`{"id":"sched-1","caption":"Open house","platforms":["instagram"],"scheduledAt":"2026-03-10T08:00:00Z"}`), nil)
	api.EXPECT().Get(mockAnyContext(), "/api/v1/social/scheduled").
		Return(jsonResponse(`[{"id":"sched-1","caption":"Open house","platforms":["instagram"],"scheduledAt":"2026-03-10T08:00:00Z"}]`), nil)

	service := NewSocialService(api)

	id, err := service.PostNow(context.Background(), domain.PostRequest{
		Caption:     "Open house",
		Platforms:   []domain.Platform{domain.PlatformInstagram},
		ScheduledAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, "post-1", id)

	scheduled, err := service.Schedule(context.Background(), domain.PostRequest{
		Caption:     "Open house",
		Platforms:   []domain.Platform{domain.PlatformInstagram},
		ScheduledAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, at, scheduled.ScheduledAt)

	posts, err := service.Scheduled(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestSocialServiceValidatesPosts(t *testing.T) {
	t.Parallel()

	service := NewSocialService(mocks.NewMockAPIClient(t))

	tests := []struct {
		name    string
		request domain.PostRequest
		field   string
	}{
		{name: "blank caption", request: domain.PostRequest{Platforms: []domain.Platform{domain.PlatformFacebook}}, field: "caption"},
		{name: "no platforms", request: domain.PostRequest{Caption: "x"}, field: "platforms"},
		{name: "unknown platform", request: domain.PostRequest{Caption: "x", Platforms: []domain.Platform{"tiktok"}}, field: "platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.PostNow(context.Background(), tt.request)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}

	_, err := service.Schedule(context.Background(), domain.PostRequest{Caption: "x", Platforms: []domain.Platform{domain.PlatformFacebook}})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "scheduledAt", validation.Field)
}

func TestWorkflowService(t *testing.T) {
	t.Parallel()

	pkg := domain.PackageDefinition(`{"id":"new-listing","steps":[]}`)
	api := mocks.NewMockAPIClient(t)
	api.EXPECT().Get(mockAnyContext(), workflowRunsPath).
		Return(jsonResponse(`[{"id":"run-1","packageId":"new-listing","status":"running","startedAt":"2026-03-02T09:00:00Z","steps":[]}]`), nil)
	api.EXPECT().Get(mockAnyContext(), "/api/v1/workflows/runs/run-1").
		Return(jsonResponse(`{"id":"run-1","status":"completed","startedAt":"2026-03-02T09:00:00Z","steps":[{"id":"s1","title":"Shoot photos","status":"completed","logs":["done"]}]}`), nil)
	api.EXPECT().Get(mockAnyContext(), "/api/v1/workflows/runs/missing").Return(ports.Response{StatusCode: 204}, nil)
	api.EXPECT().Post(mockAnyContext(), workflowRunsPath, mockAnyContext()).
		RunAndReturn(func(_ context.Context, _ string, body interface{}) (ports.Response, error) {
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"pkg":{"id":"new-listing","steps":[]},"context":{"propertyId":"42"}}`, string(encoded))
			return jsonResponse(`{"id":"run-2","status":"queued","startedAt":"2026-03-02T09:30:00Z","steps":[]}`), nil
		})

	service := NewWorkflowService(api)

	runs, err := service.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunRunning, runs[0].Status)

	run, err := service.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, []string{"done"}, run.Steps[0].Logs)

	missing, err := service.GetRun(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	started, err := service.StartRun(context.Background(), pkg, map[string]any{"propertyId": "42"})
	require.NoError(t, err)
	assert.Equal(t, domain.RunQueued, started.Status)

	_, err = service.StartRun(context.Background(), nil, nil)
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}
