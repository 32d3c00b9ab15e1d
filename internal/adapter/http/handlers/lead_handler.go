package handlers

import (
	"errors"
	"net/http"

	request "invoicepro/internal/adapter/http/dto/request"
	response "invoicepro/internal/adapter/http/dto/response"
	"invoicepro/internal/adapter/http/middleware"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/session"
	"invoicepro/internal/usecase"
	"invoicepro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
	errNoSession          = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// LeadHandler exposes the lead list view and the lead editor over HTTP.
//
// The list endpoint always answers 200 with whatever the view could load:
// option-collection failures degrade to the built-in fallback sets, and a
// lead fetch failure renders as an empty list. That policy lives in the view
// usecase, not here.
type LeadHandler struct {
	view    usecase.ILeadViewUseCase
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(view usecase.ILeadViewUseCase, uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{view: view, usecase: uc}
}

// ListLeads loads the view (refreshing the in-memory snapshot) and applies
// the filter criteria from the query string.
func (h *LeadHandler) ListLeads(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	state, err := h.view.Load(c.Request.Context(), sess)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filter := usecase.LeadFilter{
		Search:       c.Query("search"),
		LeadDate:     c.Query("date"),
		Status:       c.Query("status"),
		Service:      c.Query("service"),
		FollowUpDate: c.Query("followup_date"),
	}

	badge := func(name string) usecase.BadgeStyle {
		return h.view.StatusColor(sess, name)
	}
	c.JSON(http.StatusOK, response.FromLeadView(filter.Apply(state.Leads), state, badge))
}

// CreateLead persists a new lead from the editor payload.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), sess, usecase.LeadDraft{
		LeadDate:         payload.LeadDate,
		Name:             payload.Name,
		MobileNumber:     payload.MobileNumber,
		EmailAddress:     payload.EmailAddress,
		Services:         payload.Services,
		LeadStatus:       payload.LeadStatus,
		Notes:            payload.Notes,
		LastFollowUpDate: payload.LastFollowUpDate,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead, h.view.StatusColor(sess, lead.LeadStatus)))
}

// UpdateLeadStatus applies an inline status change. The response carries the
// optimistically patched row; the remote write settles in the background.
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	leadID := c.Param("id")
	lead, err := h.inView(c, sess, func() (entities.Lead, error) {
		return h.view.UpdateStatus(sess, leadID, payload.Status)
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead, h.view.StatusColor(sess, lead.LeadStatus)))
}

// UpdateLeadFollowUpDate applies an inline follow-up date change. A blank
// date is a no-op: nothing is patched, nothing is written, and the response
// reports applied=false.
func (h *LeadHandler) UpdateLeadFollowUpDate(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.FollowUpDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	leadID := c.Param("id")
	var applied bool
	lead, err := h.inView(c, sess, func() (entities.Lead, error) {
		var lead entities.Lead
		var err error
		lead, applied, err = h.view.UpdateFollowUpDate(sess, leadID, payload.Date)
		return lead, err
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !applied {
		c.JSON(http.StatusOK, gin.H{"applied": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applied": true,
		"lead":    response.FromLead(lead, h.view.StatusColor(sess, lead.LeadStatus)),
	})
}

// DeleteLead removes a lead. Reaching this endpoint is the affirmative
// confirmation; the blocking yes/no prompt happens client-side, and a
// declined prompt never produces a request.
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	leadID := c.Param("id")
	confirmed := func(entities.Lead) bool { return true }

	_, err := h.inView(c, sess, func() (entities.Lead, error) {
		_, err := h.view.Delete(c.Request.Context(), sess, leadID, confirmed)
		return entities.Lead{}, err
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// inView runs a view operation, loading the view first if this process has
// no snapshot for the session yet (fresh process or first interaction).
func (h *LeadHandler) inView(c *gin.Context, sess session.Session, op func() (entities.Lead, error)) (entities.Lead, error) {
	lead, err := op()
	if errors.Is(err, usecase.ErrViewNotLoaded) {
		if _, err := h.view.Load(c.Request.Context(), sess); err != nil {
			return entities.Lead{}, err
		}
		return op()
	}
	return lead, err
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		return errNoSession
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidLeadName),
		errors.Is(err, usecase.ErrInvalidLeadDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
