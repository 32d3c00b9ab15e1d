package usecase

import (
	"context"
	"errors"
	"testing"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/infrastructure/tasks"
	"invoicepro/internal/session"
	mock_interfaces "invoicepro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testSession = session.Begin("user-1", "owner@example.com")

func loadedView(t *testing.T, ctrl *gomock.Controller, leads []entities.Lead) *LeadViewUseCase {
	t.Helper()
	leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
	optRepo := mock_interfaces.NewMockIOptionRepository(ctrl)
	leadRepo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(leads, nil)
	optRepo.EXPECT().ListStatusOptions(gomock.Any(), "user-1").Return([]entities.StatusOption{
		{ID: "s1", Name: "Created", Color: "#2563EB", Order: 1},
		{ID: "s2", Name: "Client", Color: "#10B981", Order: 2},
	}, nil)
	optRepo.EXPECT().ListServiceOptions(gomock.Any(), "user-1").Return([]entities.ServiceOption{
		{ID: "svc1", Name: "SEO"},
	}, nil)

	uc := NewLeadViewUseCase(leadRepo, optRepo, tasks.Inline{})
	if _, err := uc.Load(context.Background(), testSession); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	return uc
}

func TestLeadViewUseCase_Load(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		uc := NewLeadViewUseCase(nil, nil, tasks.Inline{})
		_, err := uc.Load(context.Background(), session.Session{})
		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1", Name: "Alice"}})

		state, ok := uc.Snapshot(testSession)
		if !ok {
			t.Fatalf("expected loaded view")
		}
		if len(state.Leads) != 1 || state.Leads[0].ID != "l1" {
			t.Fatalf("unexpected leads: %+v", state.Leads)
		}
		if len(state.StatusOptions) != 2 || len(state.ServiceOptions) != 1 {
			t.Fatalf("unexpected options: %+v", state)
		}
		if state.StatusFallback || state.ServiceFallback {
			t.Fatalf("expected stored option sets, got fallback flags")
		}
	})

	t.Run("option fetch failures substitute fallbacks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		optRepo := mock_interfaces.NewMockIOptionRepository(ctrl)
		leadRepo.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Lead{{ID: "l1"}}, nil)
		optRepo.EXPECT().ListStatusOptions(gomock.Any(), "user-1").Return(nil, errors.New("unavailable"))
		optRepo.EXPECT().ListServiceOptions(gomock.Any(), "user-1").Return(nil, errors.New("unavailable"))

		uc := NewLeadViewUseCase(leadRepo, optRepo, tasks.Inline{})
		state, err := uc.Load(context.Background(), testSession)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.StatusFallback || !state.ServiceFallback {
			t.Fatalf("expected fallback flags, got %+v", state)
		}

		wantStatus := []string{"Created", "Followup", "Client", "Rejected"}
		if len(state.StatusOptions) != len(wantStatus) {
			t.Fatalf("unexpected status options: %+v", state.StatusOptions)
		}
		for i, name := range wantStatus {
			if state.StatusOptions[i].Name != name {
				t.Fatalf("status option %d: expected %s got %s", i, name, state.StatusOptions[i].Name)
			}
		}

		wantServices := []string{"SEO", "PPC", "Social Media Marketing", "Other"}
		if len(state.ServiceOptions) != len(wantServices) {
			t.Fatalf("unexpected service options: %+v", state.ServiceOptions)
		}
		for i, name := range wantServices {
			if state.ServiceOptions[i].Name != name {
				t.Fatalf("service option %d: expected %s got %s", i, name, state.ServiceOptions[i].Name)
			}
		}

		if len(state.Leads) != 1 {
			t.Fatalf("lead fetch should be unaffected: %+v", state.Leads)
		}
	})

	t.Run("lead fetch failure leaves empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		optRepo := mock_interfaces.NewMockIOptionRepository(ctrl)
		leadRepo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(nil, errors.New("unavailable"))
		optRepo.EXPECT().ListStatusOptions(gomock.Any(), "user-1").Return([]entities.StatusOption{}, nil)
		optRepo.EXPECT().ListServiceOptions(gomock.Any(), "user-1").Return([]entities.ServiceOption{}, nil)

		uc := NewLeadViewUseCase(leadRepo, optRepo, tasks.Inline{})
		state, err := uc.Load(context.Background(), testSession)
		if err != nil {
			t.Fatalf("fetch failure must not surface, got %v", err)
		}
		if state.Leads == nil || len(state.Leads) != 0 {
			t.Fatalf("expected empty lead list, got %+v", state.Leads)
		}
	})
}

func TestLeadViewUseCase_Filtered(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		uc := NewLeadViewUseCase(nil, nil, tasks.Inline{})
		_, err := uc.Filtered(session.Session{}, LeadFilter{})
		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("view not loaded", func(t *testing.T) {
		uc := NewLeadViewUseCase(nil, nil, tasks.Inline{})
		_, err := uc.Filtered(testSession, LeadFilter{})
		if !errors.Is(err, ErrViewNotLoaded) {
			t.Fatalf("expected ErrViewNotLoaded, got %v", err)
		}
	})

	t.Run("applies compound filter to snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{
			{ID: "l1", Name: "Alice", LeadStatus: "Created"},
			{ID: "l2", Name: "Bob", LeadStatus: "Client"},
		})

		got, err := uc.Filtered(testSession, LeadFilter{Status: "Client"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "l2" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestLeadViewUseCase_UpdateStatus(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewLeadViewUseCase(nil, nil, tasks.Inline{})
		if _, err := uc.UpdateStatus(session.Session{}, "l1", "Client"); !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
		if _, err := uc.UpdateStatus(testSession, "  ", "Client"); !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
		if _, err := uc.UpdateStatus(testSession, "l1", " "); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1"}})

		_, err := uc.UpdateStatus(testSession, "missing", "Client")
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("patches locally and issues remote write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1", LeadStatus: "Created"}})
		uc.leads.(*mock_interfaces.MockILeadRepository).EXPECT().
			UpdateStatus(gomock.Any(), "user-1", "l1", "Client").Return(nil)

		patched, err := uc.UpdateStatus(testSession, " l1 ", "Client")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patched.LeadStatus != "Client" {
			t.Fatalf("expected patched status, got %+v", patched)
		}
	})

	t.Run("failed remote write keeps local patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1", LeadStatus: "Created"}})
		uc.leads.(*mock_interfaces.MockILeadRepository).EXPECT().
			UpdateStatus(gomock.Any(), "user-1", "l1", "Client").Return(errors.New("write failed"))

		patched, err := uc.UpdateStatus(testSession, "l1", "Client")
		if err != nil {
			t.Fatalf("remote failure must not surface, got %v", err)
		}
		if patched.LeadStatus != "Client" {
			t.Fatalf("expected patched status, got %+v", patched)
		}

		state, _ := uc.Snapshot(testSession)
		if state.Leads[0].LeadStatus != "Client" {
			t.Fatalf("local patch must survive remote failure: %+v", state.Leads[0])
		}
	})
}

func TestLeadViewUseCase_UpdateFollowUpDate(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		uc := NewLeadViewUseCase(nil, nil, tasks.Inline{})
		_, _, err := uc.UpdateFollowUpDate(session.Session{}, "l1", "2024-03-01")
		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("blank date is a total no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1", LastFollowUpDate: "2024-01-01"}})

		_, applied, err := uc.UpdateFollowUpDate(testSession, "l1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if applied {
			t.Fatalf("blank date must not apply")
		}

		state, _ := uc.Snapshot(testSession)
		if state.Leads[0].LastFollowUpDate != "2024-01-01" {
			t.Fatalf("local state must be untouched: %+v", state.Leads[0])
		}
	})

	t.Run("patches locally and issues remote write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1"}})
		uc.leads.(*mock_interfaces.MockILeadRepository).EXPECT().
			UpdateFollowUpDate(gomock.Any(), "user-1", "l1", "2024-03-01").Return(nil)

		patched, applied, err := uc.UpdateFollowUpDate(testSession, "l1", "2024-03-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !applied || patched.LastFollowUpDate != "2024-03-01" {
			t.Fatalf("unexpected result: applied=%v lead=%+v", applied, patched)
		}
	})
}

func TestLeadViewUseCase_Delete(t *testing.T) {
	t.Run("declined confirmation aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1"}})

		deleted, err := uc.Delete(context.Background(), testSession, "l1", func(entities.Lead) bool { return false })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted {
			t.Fatalf("declined confirmation must not delete")
		}

		state, _ := uc.Snapshot(testSession)
		if len(state.Leads) != 1 {
			t.Fatalf("lead must remain: %+v", state.Leads)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1"}})

		_, err := uc.Delete(context.Background(), testSession, "missing", func(entities.Lead) bool { return true })
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("remote delete failure keeps the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1"}})
		uc.leads.(*mock_interfaces.MockILeadRepository).EXPECT().
			Delete(gomock.Any(), "user-1", "l1").Return(errors.New("delete failed"))

		deleted, err := uc.Delete(context.Background(), testSession, "l1", func(entities.Lead) bool { return true })
		if err == nil || deleted {
			t.Fatalf("expected surfaced failure, got deleted=%v err=%v", deleted, err)
		}

		state, _ := uc.Snapshot(testSession)
		if len(state.Leads) != 1 {
			t.Fatalf("row must survive a failed remote delete: %+v", state.Leads)
		}
	})

	t.Run("confirmed delete removes the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, []entities.Lead{{ID: "l1"}, {ID: "l2"}})
		uc.leads.(*mock_interfaces.MockILeadRepository).EXPECT().
			Delete(gomock.Any(), "user-1", "l1").Return(nil)

		var confirmedName string
		deleted, err := uc.Delete(context.Background(), testSession, "l1", func(lead entities.Lead) bool {
			confirmedName = lead.ID
			return true
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted || confirmedName != "l1" {
			t.Fatalf("expected confirmed delete of l1, got deleted=%v confirmed=%q", deleted, confirmedName)
		}

		state, _ := uc.Snapshot(testSession)
		if len(state.Leads) != 1 || state.Leads[0].ID != "l2" {
			t.Fatalf("unexpected remaining leads: %+v", state.Leads)
		}
	})
}

func TestLeadViewUseCase_StatusColor(t *testing.T) {
	t.Run("before any load", func(t *testing.T) {
		uc := NewLeadViewUseCase(nil, nil, tasks.Inline{})
		if got := uc.StatusColor(testSession, "Created"); got != NeutralBadge {
			t.Fatalf("expected neutral badge, got %+v", got)
		}
	})

	t.Run("exact match uses option color with white text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, nil)

		got := uc.StatusColor(testSession, "Created")
		want := BadgeStyle{Background: "#2563EB", Text: "#FFFFFF"}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("unknown status gets neutral badge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := loadedView(t, ctrl, nil)

		if got := uc.StatusColor(testSession, "created"); got != NeutralBadge {
			t.Fatalf("match is exact, expected neutral badge for %q, got %+v", "created", got)
		}
		if got := uc.StatusColor(testSession, "Archived"); got != NeutralBadge {
			t.Fatalf("expected neutral badge, got %+v", got)
		}
	})
}
