package usecase

import (
	"context"
	"errors"
	"testing"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/session"
	mock_interfaces "invoicepro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Create(t *testing.T) {
	draft := LeadDraft{
		LeadDate:     "2024-02-10",
		Name:         " Alice Johnson ",
		MobileNumber: " +61 400 111 222 ",
		EmailAddress: " alice@example.com ",
		Services:     []string{"SEO"},
		Notes:        "met at expo",
	}

	t.Run("no session", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		_, err := uc.Create(context.Background(), session.Session{}, draft)
		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		d := draft
		d.Name = "   "
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidLeadName) {
			t.Fatalf("expected ErrInvalidLeadName, got %v", err)
		}
	})

	t.Run("bad lead date", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		for _, date := range []string{"", "10/02/2024", "2024-13-40"} {
			d := draft
			d.LeadDate = date
			_, err := uc.Create(context.Background(), testSession, d)
			if !errors.Is(err, ErrInvalidLeadDate) {
				t.Fatalf("date %q: expected ErrInvalidLeadDate, got %v", date, err)
			}
		}
	})

	t.Run("bad follow-up date", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		d := draft
		d.LastFollowUpDate = "soon"
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidLeadDate) {
			t.Fatalf("expected ErrInvalidLeadDate, got %v", err)
		}
	})

	t.Run("success defaults status and trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), "user-1", gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, _ string, l entities.Lead) (entities.Lead, error) {
				if l.Name != "Alice Johnson" || l.MobileNumber != "+61 400 111 222" || l.EmailAddress != "alice@example.com" {
					t.Fatalf("expected trimmed fields: %+v", l)
				}
				if l.LeadStatus != "Created" {
					t.Fatalf("expected default status, got %q", l.LeadStatus)
				}
				return l, nil
			},
		)

		res, err := uc.Create(context.Background(), testSession, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LeadStatus != "Created" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("nil services are normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), "user-1", gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, _ string, l entities.Lead) (entities.Lead, error) {
				if l.Services == nil {
					t.Fatalf("services must never be stored as nil")
				}
				return l, nil
			},
		)

		d := draft
		d.Services = nil
		if _, err := uc.Create(context.Background(), testSession, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit status kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), "user-1", gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, _ string, l entities.Lead) (entities.Lead, error) {
				return l, nil
			},
		)

		d := draft
		d.LeadStatus = "Client"
		res, err := uc.Create(context.Background(), testSession, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LeadStatus != "Client" {
			t.Fatalf("expected explicit status, got %q", res.LeadStatus)
		}
	})
}
