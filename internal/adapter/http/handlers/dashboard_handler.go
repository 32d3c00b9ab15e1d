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

var errInvalidDashboardPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)

// DashboardHandler serves the invoice overview and its status transitions.
// A status change answers with the fully re-fetched dashboard, never an
// incrementally patched one.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	dashboard, err := h.usecase.Load(c.Request.Context(), sess)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(dashboard))
}

func (h *DashboardHandler) UpdateInvoiceStatus(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDashboardPayload.HTTPStatus, errInvalidDashboardPayload.ToHTTPError())
		return
	}

	dashboard, err := h.usecase.UpdateInvoiceStatus(
		c.Request.Context(),
		sess,
		c.Param("id"),
		entities.InvoiceStatus(payload.Status),
	)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(dashboard))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		return errNoSession
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
