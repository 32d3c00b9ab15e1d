package usecase

import (
	"context"
	"errors"
	"strings"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/session"
	"invoicepro/internal/usecase/interfaces"
)

var ErrInvalidCustomerName = errors.New("invalid customer name")

// CustomerDraft is the editor input for a new customer.
type CustomerDraft struct {
	Name    string
	Email   string
	Phone   string
	Address string
	GST     string
}

// ICustomerUseCase manages the customer book that invoice snapshots are
// taken from.
type ICustomerUseCase interface {
	Create(ctx context.Context, sess session.Session, draft CustomerDraft) (entities.Customer, error)
	List(ctx context.Context, sess session.Session) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, sess session.Session, draft CustomerDraft) (entities.Customer, error) {
	if !sess.Active() {
		return entities.Customer{}, ErrNoSession
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	customer := entities.Customer{
		Name:    name,
		Email:   strings.TrimSpace(draft.Email),
		Phone:   strings.TrimSpace(draft.Phone),
		Address: strings.TrimSpace(draft.Address),
		GST:     strings.TrimSpace(draft.GST),
	}
	return u.repo.Create(ctx, sess.UserID, customer)
}

func (u *CustomerUseCase) List(ctx context.Context, sess session.Session) ([]entities.Customer, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	return u.repo.ListByUser(ctx, sess.UserID)
}
