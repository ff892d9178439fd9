package domain

import "time"

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformLinkedIn:
		return true
	default:
		return false
	}
}

type PlatformConnection struct {
	Platform    Platform `json:"platform"`
	Connected   bool     `json:"connected"`
	AccountName string   `json:"accountName,omitempty"`
}

type PostRequest struct {
	Caption     string     `json:"caption"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Platforms   []Platform `json:"platforms"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

type ScheduledPost struct {
	ID          string     `json:"id"`
	Caption     string     `json:"caption"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Platforms   []Platform `json:"platforms"`
	ScheduledAt time.Time  `json:"scheduledAt"`
}
