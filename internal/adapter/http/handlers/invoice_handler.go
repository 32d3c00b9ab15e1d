package handlers

import (
	"errors"
	"net/http"

	request "invoicepro/internal/adapter/http/dto/request"
	response "invoicepro/internal/adapter/http/dto/response"
	"invoicepro/internal/adapter/http/middleware"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase"
	"invoicepro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler exposes invoice creation and listing.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	items := make([]usecase.InvoiceItemDraft, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, usecase.InvoiceItemDraft{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			GSTRate:     item.GSTRate,
		})
	}

	invoice, err := h.usecase.Create(c.Request.Context(), sess, usecase.InvoiceDraft{
		InvoiceNumber: payload.InvoiceNumber,
		CustomerID:    payload.CustomerID,
		Date:          payload.Date,
		DueDate:       payload.DueDate,
		Items:         items,
		Status:        entities.InvoiceStatus(payload.Status),
		Notes:         payload.Notes,
	})
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	invoices, err := h.usecase.List(c.Request.Context(), sess)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		return errNoSession
	case errors.Is(err, usecase.ErrInvalidInvoiceNumber),
		errors.Is(err, usecase.ErrInvalidInvoiceDate),
		errors.Is(err, usecase.ErrInvalidInvoiceItems),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCustomer):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
