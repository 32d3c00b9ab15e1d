package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicepro/internal/adapter/http/handlers/mocks"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/customers", withSession(testSession), h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", withSession(testSession), h.CreateCustomer)

		uc.EXPECT().Create(gomock.Any(), testSession, gomock.Any()).Return(entities.Customer{}, usecase.ErrInvalidCustomerName)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", withSession(testSession), h.CreateCustomer)

		uc.EXPECT().Create(gomock.Any(), testSession, gomock.Any()).Return(entities.Customer{ID: "c1", Name: "Acme"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "c1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/customers", h.ListCustomers)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers", withSession(testSession), h.ListCustomers)

		uc.EXPECT().List(gomock.Any(), testSession).Return([]entities.Customer{{ID: "c1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "c1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapCustomerError(t *testing.T) {
	if got := mapCustomerError(usecase.ErrNoSession); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapCustomerError(usecase.ErrInvalidCustomerName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCustomerError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
