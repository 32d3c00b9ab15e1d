package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/infrastructure/tasks"
	"invoicepro/internal/session"
	"invoicepro/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoSession     = errors.New("no active session")
	ErrViewNotLoaded = errors.New("lead view not loaded")
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidLeadID = errors.New("invalid lead id")
	ErrInvalidStatus = errors.New("invalid status")
)

// Confirmer answers the blocking delete confirmation prompt for one lead.
type Confirmer func(lead entities.Lead) bool

// BadgeStyle is the rendered background/text color pair of a status badge.
type BadgeStyle struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// NeutralBadge is rendered for any status name that matches no loaded
// StatusOption. Unknown statuses are never an error.
var NeutralBadge = BadgeStyle{Background: "#E5E7EB", Text: "#1F2937"}

// LeadViewState is the in-memory state of one user's lead list view: the
// collection snapshot plus the filter option sets, and whether either option
// set is the built-in fallback rather than the stored collection.
type LeadViewState struct {
	Leads           []entities.Lead
	StatusOptions   []entities.StatusOption
	ServiceOptions  []entities.ServiceOption
	StatusFallback  bool
	ServiceFallback bool
}

func (s LeadViewState) clone() LeadViewState {
	out := s
	out.Leads = make([]entities.Lead, len(s.Leads))
	copy(out.Leads, s.Leads)
	out.StatusOptions = make([]entities.StatusOption, len(s.StatusOptions))
	copy(out.StatusOptions, s.StatusOptions)
	out.ServiceOptions = make([]entities.ServiceOption, len(s.ServiceOptions))
	copy(out.ServiceOptions, s.ServiceOptions)
	return out
}

// ILeadViewUseCase is the lead list view: snapshot load with graceful
// degradation, compound filtering, optimistic inline edits, and confirmed
// deletion.
//
// Inline edits patch the in-memory state synchronously and push the remote
// write through the task queue without awaiting it. A failed remote write is
// logged and the local patch is kept; the divergence lasts until the next
// Load. That inconsistency window is an accepted product decision, not a bug.
type ILeadViewUseCase interface {
	Load(ctx context.Context, sess session.Session) (LeadViewState, error)
	Snapshot(sess session.Session) (LeadViewState, bool)
	Filtered(sess session.Session, filter LeadFilter) ([]entities.Lead, error)
	UpdateStatus(sess session.Session, leadID, newStatus string) (entities.Lead, error)
	UpdateFollowUpDate(sess session.Session, leadID, newDate string) (entities.Lead, bool, error)
	Delete(ctx context.Context, sess session.Session, leadID string, confirm Confirmer) (bool, error)
	StatusColor(sess session.Session, statusName string) BadgeStyle
}

type LeadViewUseCase struct {
	leads   interfaces.ILeadRepository
	options interfaces.IOptionRepository
	tasks   tasks.Submitter

	mu    sync.Mutex
	views map[string]*LeadViewState
}

var _ ILeadViewUseCase = (*LeadViewUseCase)(nil)

func NewLeadViewUseCase(leads interfaces.ILeadRepository, options interfaces.IOptionRepository, tasks tasks.Submitter) *LeadViewUseCase {
	return &LeadViewUseCase{
		leads:   leads,
		options: options,
		tasks:   tasks,
		views:   make(map[string]*LeadViewState),
	}
}

// Load fetches the lead collection and both option collections concurrently.
// The three fetches write disjoint state slots and may settle in any order.
//
// Degradation policy: an option fetch failure substitutes the built-in
// fallback set; a lead fetch failure leaves the list empty. Both are logged
// and neither is surfaced to the caller, so a failed load is
// indistinguishable from an empty collection.
func (u *LeadViewUseCase) Load(ctx context.Context, sess session.Session) (LeadViewState, error) {
	if !sess.Active() {
		return LeadViewState{}, ErrNoSession
	}

	state := LeadViewState{Leads: []entities.Lead{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leads, err := u.leads.ListByUser(gctx, sess.UserID)
		if err != nil {
			zap.L().Error("failed to load leads", zap.String("user", sess.UserID), zap.Error(err))
			return nil
		}
		state.Leads = leads
		return nil
	})
	g.Go(func() error {
		opts, err := u.options.ListStatusOptions(gctx, sess.UserID)
		if err != nil {
			zap.L().Error("failed to load status options", zap.String("user", sess.UserID), zap.Error(err))
			state.StatusOptions = entities.DefaultStatusOptions()
			state.StatusFallback = true
			return nil
		}
		state.StatusOptions = opts
		return nil
	})
	g.Go(func() error {
		opts, err := u.options.ListServiceOptions(gctx, sess.UserID)
		if err != nil {
			zap.L().Error("failed to load service options", zap.String("user", sess.UserID), zap.Error(err))
			state.ServiceOptions = entities.DefaultServiceOptions()
			state.ServiceFallback = true
			return nil
		}
		state.ServiceOptions = opts
		return nil
	})
	_ = g.Wait()

	u.mu.Lock()
	u.views[sess.UserID] = &state
	u.mu.Unlock()

	return state.clone(), nil
}

// Snapshot returns a copy of the loaded view state, if any.
func (u *LeadViewUseCase) Snapshot(sess session.Session) (LeadViewState, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	state, ok := u.views[sess.UserID]
	if !ok {
		return LeadViewState{}, false
	}
	return state.clone(), true
}

// Filtered applies the compound predicate to the loaded snapshot.
func (u *LeadViewUseCase) Filtered(sess session.Session, filter LeadFilter) ([]entities.Lead, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	state, ok := u.Snapshot(sess)
	if !ok {
		return nil, ErrViewNotLoaded
	}
	return filter.Apply(state.Leads), nil
}

// UpdateStatus patches the lead's status in local state and issues the remote
// partial update as a fire-and-forget task. The returned lead reflects the
// local patch regardless of the remote outcome.
func (u *LeadViewUseCase) UpdateStatus(sess session.Session, leadID, newStatus string) (entities.Lead, error) {
	if !sess.Active() {
		return entities.Lead{}, ErrNoSession
	}
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if strings.TrimSpace(newStatus) == "" {
		return entities.Lead{}, ErrInvalidStatus
	}

	patched, err := u.patchLead(sess.UserID, leadID, func(lead *entities.Lead) {
		lead.LeadStatus = newStatus
	})
	if err != nil {
		return entities.Lead{}, err
	}

	userID := sess.UserID
	u.tasks.Submit("lead-status-update", func() error {
		return u.leads.UpdateStatus(context.Background(), userID, leadID, newStatus)
	})
	return patched, nil
}

// UpdateFollowUpDate is the same optimistic pattern for the follow-up date.
// A blank incoming date is a guard-clause no-op: no local patch, no remote
// call, and the second return value is false.
func (u *LeadViewUseCase) UpdateFollowUpDate(sess session.Session, leadID, newDate string) (entities.Lead, bool, error) {
	if !sess.Active() {
		return entities.Lead{}, false, ErrNoSession
	}
	if newDate == "" {
		return entities.Lead{}, false, nil
	}
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, false, ErrInvalidLeadID
	}

	patched, err := u.patchLead(sess.UserID, leadID, func(lead *entities.Lead) {
		lead.LastFollowUpDate = newDate
	})
	if err != nil {
		return entities.Lead{}, false, err
	}

	userID := sess.UserID
	u.tasks.Submit("lead-followup-update", func() error {
		return u.leads.UpdateFollowUpDate(context.Background(), userID, leadID, newDate)
	})
	return patched, true, nil
}

// Delete removes a lead after an affirmative confirmation. A declined
// confirmation aborts with no state change anywhere. The remote delete is
// awaited; only on success is the row dropped from local state. There is no
// undo.
func (u *LeadViewUseCase) Delete(ctx context.Context, sess session.Session, leadID string, confirm Confirmer) (bool, error) {
	if !sess.Active() {
		return false, ErrNoSession
	}
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return false, ErrInvalidLeadID
	}

	lead, err := u.findLead(sess.UserID, leadID)
	if err != nil {
		return false, err
	}

	if confirm == nil || !confirm(lead) {
		return false, nil
	}

	if err := u.leads.Delete(ctx, sess.UserID, leadID); err != nil {
		zap.L().Error("failed to delete lead", zap.String("lead", leadID), zap.Error(err))
		return false, err
	}

	u.mu.Lock()
	if state, ok := u.views[sess.UserID]; ok {
		kept := state.Leads[:0]
		for _, l := range state.Leads {
			if l.ID != leadID {
				kept = append(kept, l)
			}
		}
		state.Leads = kept
	}
	u.mu.Unlock()

	return true, nil
}

// StatusColor resolves the badge style for a status name by exact match
// against the loaded options. Unknown names, and calls before any Load, get
// the neutral fallback.
func (u *LeadViewUseCase) StatusColor(sess session.Session, statusName string) BadgeStyle {
	u.mu.Lock()
	defer u.mu.Unlock()
	state, ok := u.views[sess.UserID]
	if !ok {
		return NeutralBadge
	}
	for _, opt := range state.StatusOptions {
		if opt.Name == statusName {
			return BadgeStyle{Background: opt.Color, Text: "#FFFFFF"}
		}
	}
	return NeutralBadge
}

func (u *LeadViewUseCase) patchLead(userID, leadID string, patch func(*entities.Lead)) (entities.Lead, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.views[userID]
	if !ok {
		return entities.Lead{}, ErrViewNotLoaded
	}
	for i := range state.Leads {
		if state.Leads[i].ID == leadID {
			patch(&state.Leads[i])
			return state.Leads[i], nil
		}
	}
	return entities.Lead{}, ErrLeadNotFound
}

func (u *LeadViewUseCase) findLead(userID, leadID string) (entities.Lead, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.views[userID]
	if !ok {
		return entities.Lead{}, ErrViewNotLoaded
	}
	for _, lead := range state.Leads {
		if lead.ID == leadID {
			return lead, nil
		}
	}
	return entities.Lead{}, ErrLeadNotFound
}
