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

func TestInvoiceUseCase_Create(t *testing.T) {
	draft := InvoiceDraft{
		InvoiceNumber: " INV-001 ",
		CustomerID:    "c1",
		Date:          "2024-02-10",
		DueDate:       "2024-03-10",
		Items: []InvoiceItemDraft{
			{Description: "Audit", Quantity: 2, Rate: 100, GSTRate: 10},
			{Description: "Report", Quantity: 1, Rate: 50, GSTRate: 0},
		},
	}
	customer := entities.Customer{ID: "c1", Name: "Acme", Email: "billing@acme.test"}

	t.Run("no session", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.Create(context.Background(), session.Session{}, draft)
		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("blank number", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		d := draft
		d.InvoiceNumber = " "
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidInvoiceNumber) {
			t.Fatalf("expected ErrInvalidInvoiceNumber, got %v", err)
		}
	})

	t.Run("bad dates", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		d := draft
		d.DueDate = "next month"
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidInvoiceDate) {
			t.Fatalf("expected ErrInvalidInvoiceDate, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		d := draft
		d.Items = nil
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidInvoiceItems) {
			t.Fatalf("expected ErrInvalidInvoiceItems, got %v", err)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		d := draft
		d.Status = "archived"
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewInvoiceUseCase(nil, customers)
		customers.EXPECT().GetByID(gomock.Any(), "user-1", "c1").Return(entities.Customer{}, errors.New("not found"))

		_, err := uc.Create(context.Background(), testSession, draft)
		if !errors.Is(err, ErrUnknownCustomer) {
			t.Fatalf("expected ErrUnknownCustomer, got %v", err)
		}
	})

	t.Run("bad line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewInvoiceUseCase(nil, customers)
		customers.EXPECT().GetByID(gomock.Any(), "user-1", "c1").Return(customer, nil)

		d := draft
		d.Items = []InvoiceItemDraft{{Description: "Audit", Quantity: 0, Rate: 100}}
		_, err := uc.Create(context.Background(), testSession, d)
		if !errors.Is(err, ErrInvalidInvoiceItems) {
			t.Fatalf("expected ErrInvalidInvoiceItems, got %v", err)
		}
	})

	t.Run("computes amounts and snapshots the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewInvoiceUseCase(invoices, customers)

		customers.EXPECT().GetByID(gomock.Any(), "user-1", "c1").Return(customer, nil)
		invoices.EXPECT().Create(gomock.Any(), "user-1", gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, _ string, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != "INV-001" {
					t.Fatalf("expected trimmed number, got %q", inv.InvoiceNumber)
				}
				if inv.Customer.ID != "c1" || inv.Customer.Name != "Acme" {
					t.Fatalf("expected customer snapshot, got %+v", inv.Customer)
				}
				// 2*100 with 10% GST and 1*50 with none.
				if inv.Items[0].GSTAmount != 20 || inv.Items[0].Amount != 220 {
					t.Fatalf("unexpected first line: %+v", inv.Items[0])
				}
				if inv.Items[1].GSTAmount != 0 || inv.Items[1].Amount != 50 {
					t.Fatalf("unexpected second line: %+v", inv.Items[1])
				}
				if inv.Subtotal != 250 || inv.TotalGST != 20 || inv.Total != 270 {
					t.Fatalf("unexpected aggregates: %+v", inv)
				}
				if inv.Status != entities.InvoiceStatusDraft {
					t.Fatalf("expected default draft status, got %q", inv.Status)
				}
				return inv, nil
			},
		)

		res, err := uc.Create(context.Background(), testSession, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 270 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestInvoiceUseCase_List(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.List(context.Background(), session.Session{})
		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(invoices, nil)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{{ID: "i1"}}, nil)

		res, err := uc.List(context.Background(), testSession)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "i1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
