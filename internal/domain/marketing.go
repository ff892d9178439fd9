package domain

import "time"

type TemplateSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Type          string `json:"type"`
	Description   string `json:"description,omitempty"`
	DubaiSpecific bool   `json:"dubai_specific"`
}

type CampaignType string

const (
	CampaignPostcard       CampaignType = "postcard"
	CampaignEmailBlast     CampaignType = "email_blast"
	CampaignSocialCampaign CampaignType = "social_campaign"
	CampaignFlyer          CampaignType = "flyer"
)

func (t CampaignType) Valid() bool {
	switch t {
	case CampaignPostcard, CampaignEmailBlast, CampaignSocialCampaign, CampaignFlyer:
		return true
	default:
		return false
	}
}

type CampaignRequest struct {
	PropertyID          int64
	CampaignType        CampaignType
	TemplateID          *int64
	CustomContent       map[string]any
	AutoGenerateContent *bool
}

type CampaignResult struct {
	CampaignID int64
	Status     string
	Message    string
	Campaign   map[string]any
}

type PackageRequest struct {
	PropertyID       int64
	IncludePostcards *bool
	IncludeEmail     *bool
	IncludeSocial    *bool
	IncludeFlyers    *bool
	CustomMessage    string
}

type PackageResult struct {
	PackageID  string
	PropertyID int64
	Message    string
	Campaigns  map[string]int64
	CreatedAt  time.Time
	Status     string
	NextSteps  string
}
