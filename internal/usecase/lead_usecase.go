package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/session"
	"invoicepro/internal/usecase/interfaces"
)

var (
	ErrInvalidLeadName = errors.New("invalid lead name")
	ErrInvalidLeadDate = errors.New("invalid lead date")
)

// LeadDraft is the editor input for a new lead.
type LeadDraft struct {
	LeadDate         string
	Name             string
	MobileNumber     string
	EmailAddress     string
	Services         []string
	LeadStatus       string
	Notes            string
	LastFollowUpDate string
}

// ILeadUseCase covers lead creation from the editor. Listing, filtering and
// inline edits belong to the lead list view.
type ILeadUseCase interface {
	Create(ctx context.Context, sess session.Session, draft LeadDraft) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Create(ctx context.Context, sess session.Session, draft LeadDraft) (entities.Lead, error) {
	if !sess.Active() {
		return entities.Lead{}, ErrNoSession
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}
	if !validISODate(draft.LeadDate) {
		return entities.Lead{}, ErrInvalidLeadDate
	}
	if draft.LastFollowUpDate != "" && !validISODate(draft.LastFollowUpDate) {
		return entities.Lead{}, ErrInvalidLeadDate
	}

	status := strings.TrimSpace(draft.LeadStatus)
	if status == "" {
		status = "Created"
	}

	lead := entities.Lead{
		LeadDate:         draft.LeadDate,
		Name:             name,
		MobileNumber:     strings.TrimSpace(draft.MobileNumber),
		EmailAddress:     strings.TrimSpace(draft.EmailAddress),
		Services:         draft.Services,
		LeadStatus:       status,
		Notes:            draft.Notes,
		LastFollowUpDate: draft.LastFollowUpDate,
	}
	return u.repo.Create(ctx, sess.UserID, lead.Normalize())
}

func validISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
