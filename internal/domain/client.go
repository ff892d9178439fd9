package domain

import (
	"strings"
	"time"
)

type ClientID string

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusNurturing LeadStatus = "nurturing"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusArchived  LeadStatus = "archived"
)

const (
	DefaultLeadScore = 50
	MaxLeadScore     = 100
)

func ParseLeadStatus(raw string) (LeadStatus, bool) {
	status := LeadStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusNurturing, LeadStatusConverted, LeadStatusArchived:
		return status, true
	default:
		return "", false
	}
}

type Client struct {
	ID              ClientID
	Name            string
	Email           string
	Phone           string
	LeadScore       float64
	Status          LeadStatus
	LastContactedAt time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ClientDraft struct {
	Name            string
	Email           string
	Phone           string
	LeadScore       *float64
	Status          LeadStatus
	LastContactedAt time.Time
	Notes           string
}

func (d ClientDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if d.Status != "" {
		if _, ok := ParseLeadStatus(string(d.Status)); !ok {
			return &ValidationError{Field: "status", Message: "unsupported lead status " + string(d.Status)}
		}
	}
	return nil
}

type ClientPatch struct {
	Name            *string
	Email           *string
	Phone           *string
	Notes           *string
	Status          *LeadStatus
	LeadScore       *float64
	LastContactedAt *time.Time
}

type CommunicationType string

const (
	CommunicationCall    CommunicationType = "call"
	CommunicationEmail   CommunicationType = "email"
	CommunicationSMS     CommunicationType = "sms"
	CommunicationMeeting CommunicationType = "meeting"
)

func ParseCommunicationType(raw string) (CommunicationType, bool) {
	kind := CommunicationType(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case CommunicationCall, CommunicationEmail, CommunicationSMS, CommunicationMeeting:
		return kind, true
	default:
		return "", false
	}
}

type CommunicationLog struct {
	ID        string
	ClientID  ClientID
	Type      CommunicationType
	Content   string
	Timestamp time.Time
	CreatedAt time.Time
}

type CommunicationDraft struct {
	ClientID  ClientID
	Type      CommunicationType
	Content   string
	Timestamp time.Time
}
