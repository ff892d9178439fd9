package domain

import (
	"sort"
	"time"
)

type TransactionID string

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusInProgress TransactionStatus = "in_progress"
	TransactionStatusClosed     TransactionStatus = "closed"
	TransactionStatusCanceled   TransactionStatus = "canceled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusInProgress, TransactionStatusClosed, TransactionStatusCanceled:
		return true
	default:
		return false
	}
}

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneBlocked    MilestoneStatus = "blocked"
)

type Milestone struct {
	ID        string
	Name      string
	DueDate   time.Time
	Status    MilestoneStatus
	Completed bool
	Notes     string
}

type Document struct {
	Name string
	URL  string
}

type Transaction struct {
	ID              TransactionID
	PropertyID      PropertyID
	BuyerID         ClientID
	SellerID        ClientID
	Status          TransactionStatus
	OfferPrice      *float64
	FinalPrice      *float64
	TransactionType string
	Milestones      []Milestone
	Documents       []Document
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TransactionDraft struct {
	PropertyID      PropertyID
	TransactionType string
	OfferPrice      *float64
}

func (d TransactionDraft) Validate() error {
	if d.PropertyID == "" {
		return &ValidationError{Field: "property_id", Message: "property id is required"}
	}
	if d.TransactionType == "" {
		return &ValidationError{Field: "transaction_type", Message: "transaction type is required"}
	}
	return nil
}

// SortMilestones orders milestones by due date; undated milestones go last.
func SortMilestones(milestones []Milestone) {
	sort.SliceStable(milestones, func(i, j int) bool {
		a, b := milestones[i].DueDate, milestones[j].DueDate
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		return a.Before(b)
	})
}

type Deadline struct {
	TransactionID TransactionID
	Milestone     Milestone
}
