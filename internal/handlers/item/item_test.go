package itemhandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	itemhandler "shopapi/internal/handlers/item"
	"shopapi/internal/handlers/item/mocks"
	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/slogdiscard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandler(service *mocks.Service) *itemhandler.Handler {
	logger := slogdiscard.NewDiscardLogger()
	return itemhandler.New(logger, service)
}

func TestHandler_List(t *testing.T) {
	mockService := new(mocks.Service)
	mockService.On("List", mock.Anything).Return([]models.Item{
		{Id: 1, Name: "book", Price: decimal.RequireFromString("10.0")},
		{Id: 2, Name: "pencil", Price: decimal.RequireFromString("5.0")},
	}, nil)

	handler := newTestHandler(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/item", nil)
	ww := httptest.NewRecorder()

	handler.List(ww, req)
	resp := ww.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Item
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 2)
	assert.Equal(t, "book", got[0].Name)

	mockService.AssertExpectations(t)
}

func TestHandler_GetById(t *testing.T) {
	t.Run("existing item", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("GetById", mock.Anything, 1).
			Return(models.Item{Id: 1, Name: "book", Price: decimal.RequireFromString("10.0")}, nil)

		handler := newTestHandler(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/item/1", nil)
		ww := httptest.NewRecorder()

		handler.GetById(ww, req, 1)
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Item
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, 1, got.Id)

		mockService.AssertExpectations(t)
	})

	t.Run("missing item", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("GetById", mock.Anything, 999).
			Return(models.Item{}, serviceerrors.ErrNotFound)

		handler := newTestHandler(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/item/999", nil)
		ww := httptest.NewRecorder()

		handler.GetById(ww, req, 999)
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		mockService.AssertExpectations(t)
	})
}

func TestHandler_GetByName(t *testing.T) {
	t.Run("matches exist", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("GetByName", mock.Anything, "book").Return([]models.Item{
			{Id: 1, Name: "book", Price: decimal.RequireFromString("10.0")},
		}, nil)

		handler := newTestHandler(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/item/name/book", nil)
		ww := httptest.NewRecorder()

		handler.GetByName(ww, req, "book")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		mockService.AssertExpectations(t)
	})

	t.Run("no matches", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("GetByName", mock.Anything, "AAAAAAAAAA").
			Return(nil, serviceerrors.ErrNotFound)

		handler := newTestHandler(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/item/name/AAAAAAAAAA", nil)
		ww := httptest.NewRecorder()

		handler.GetByName(ww, req, "AAAAAAAAAA")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		mockService.AssertExpectations(t)
	})
}
