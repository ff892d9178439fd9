package payload

import (
	"github.com/propertypro/ppai/internal/domain"
	"github.com/tidwall/gjson"
)

func CampaignBody(request domain.CampaignRequest) map[string]any {
	autoGenerate := true
	if request.AutoGenerateContent != nil {
		autoGenerate = *request.AutoGenerateContent
	}
	body := map[string]any{
		"property_id":           request.PropertyID,
		"campaign_type":         string(request.CampaignType),
		"auto_generate_content": autoGenerate,
	}
	if request.TemplateID != nil {
		body["template_id"] = *request.TemplateID
	}
	if request.CustomContent != nil {
		body["custom_content"] = request.CustomContent
	}
	return body
}

func CampaignResult(body []byte) domain.CampaignResult {
	doc := document(body)
	result := domain.CampaignResult{
		CampaignID: doc.Get("campaign_id").Int(),
		Status:     text(doc.Get("status")),
		Message:    text(doc.Get("message")),
		Campaign:   map[string]any{},
	}
	if campaign, ok := doc.Get("campaign").Value().(map[string]any); ok {
		result.Campaign = campaign
	}
	return result
}

func PackageBody(request domain.PackageRequest) map[string]any {
	body := map[string]any{
		"property_id":       request.PropertyID,
		"include_postcards": boolOr(request.IncludePostcards, true),
		"include_email":     boolOr(request.IncludeEmail, true),
		"include_social":    boolOr(request.IncludeSocial, true),
		"include_flyers":    boolOr(request.IncludeFlyers, false),
	}
	if request.CustomMessage != "" {
		body["custom_message"] = request.CustomMessage
	}
	return body
}

func PackageResult(body []byte) domain.PackageResult {
	doc := document(body)
	pkg := doc.Get("package")
	result := domain.PackageResult{
		PackageID:  text(doc.Get("package_id")),
		PropertyID: pkg.Get("property_id").Int(),
		Message:    text(doc.Get("message")),
		Campaigns:  map[string]int64{},
		CreatedAt:  timestamp(pkg.Get("created_at")),
		Status:     text(pkg.Get("status")),
		NextSteps:  text(doc.Get("next_steps")),
	}
	pkg.Get("campaigns").ForEach(func(key, value gjson.Result) bool {
		result.Campaigns[key.String()] = value.Int()
		return true
	})
	return result
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
