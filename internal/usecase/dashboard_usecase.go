package usecase

import (
	"context"
	"errors"
	"strings"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/session"
	"invoicepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

// Metrics are the four dashboard summaries, produced in one linear pass over
// the invoice collection.
//
// SentCount counts sent AND paid invoices (a paid invoice was necessarily
// sent), while PendingAmount sums everything not paid, drafts included. The
// asymmetry is the business semantics: a draft has no committed amount yet
// but is still money not received. It is intentional and must not be "fixed".
type Metrics struct {
	SentCount      int     `json:"sentCount"`
	TotalAmount    float64 `json:"totalAmount"`
	ReceivedAmount float64 `json:"receivedAmount"`
	PendingAmount  float64 `json:"pendingAmount"`
}

// ComputeMetrics aggregates the full invoice set. Always a full recompute;
// collections are small and incremental maintenance is not worth carrying.
func ComputeMetrics(invoices []entities.Invoice) Metrics {
	var m Metrics
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusSent || inv.Status == entities.InvoiceStatusPaid {
			m.SentCount++
		}
		m.TotalAmount += inv.Total
		if inv.Status == entities.InvoiceStatusPaid {
			m.ReceivedAmount += inv.Total
		} else {
			m.PendingAmount += inv.Total
		}
	}
	return m
}

// Dashboard is the invoice overview: the collection ordered newest first,
// plus the aggregated metrics.
type Dashboard struct {
	Invoices []entities.Invoice `json:"invoices"`
	Metrics  Metrics            `json:"metrics"`
}

// IDashboardUseCase loads the invoice dashboard and applies status changes.
// A status change re-fetches the whole collection and recomputes the metrics
// rather than patching them incrementally.
type IDashboardUseCase interface {
	Load(ctx context.Context, sess session.Session) (Dashboard, error)
	UpdateInvoiceStatus(ctx context.Context, sess session.Session, invoiceID string, status entities.InvoiceStatus) (Dashboard, error)
}

type DashboardUseCase struct {
	invoices interfaces.IInvoiceRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(invoices interfaces.IInvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices}
}

// Load fetches all invoices and aggregates the metrics. A fetch failure is
// logged and yields an empty dashboard, same policy as the lead list: never a
// blocking error.
func (u *DashboardUseCase) Load(ctx context.Context, sess session.Session) (Dashboard, error) {
	if !sess.Active() {
		return Dashboard{}, ErrNoSession
	}

	invoices, err := u.invoices.ListByUser(ctx, sess.UserID)
	if err != nil {
		zap.L().Error("failed to load invoices", zap.String("user", sess.UserID), zap.Error(err))
		invoices = nil
	}
	if invoices == nil {
		invoices = []entities.Invoice{}
	}

	return Dashboard{Invoices: invoices, Metrics: ComputeMetrics(invoices)}, nil
}

// UpdateInvoiceStatus writes the new status, then reloads the dashboard in
// full so table and metrics stay consistent with the store.
func (u *DashboardUseCase) UpdateInvoiceStatus(ctx context.Context, sess session.Session, invoiceID string, status entities.InvoiceStatus) (Dashboard, error) {
	if !sess.Active() {
		return Dashboard{}, ErrNoSession
	}
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return Dashboard{}, ErrInvalidInvoiceID
	}
	if !status.Valid() {
		return Dashboard{}, ErrInvalidInvoiceStatus
	}

	if err := u.invoices.UpdateStatus(ctx, sess.UserID, invoiceID, status); err != nil {
		zap.L().Error("failed to update invoice status",
			zap.String("invoice", invoiceID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return Dashboard{}, err
	}

	return u.Load(ctx, sess)
}
