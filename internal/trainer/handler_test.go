package trainer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrainerService struct{ mock.Mock }

func (m *MockTrainerService) AddWindow(ctx context.Context, trainerID int, req AddWindowRequest) (*AvailabilityWindow, error) {
	args := m.Called(ctx, trainerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AvailabilityWindow), args.Error(1)
}

func (m *MockTrainerService) GetWindows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AvailabilityWindow), args.Error(1)
}

func (m *MockTrainerService) IsWithinAvailability(ctx context.Context, trainerID int, candidate schedule.Interval) (bool, error) {
	args := m.Called(ctx, trainerID, candidate)
	return args.Bool(0), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.POST("/trainers/:trainerID/availability", h.AddWindow)
	router.GET("/trainers/:trainerID/availability", h.ListWindows)
	return router
}

func TestAddWindowHandlerCreated(t *testing.T) {
	svc := new(MockTrainerService)
	router := setupRouter(svc)

	svc.On("AddWindow", mock.Anything, 1, mock.Anything).
		Return(&AvailabilityWindow{ID: 5, TrainerID: 1}, nil)

	body, _ := json.Marshal(AddWindowRequest{StartTime: "2026-03-01T09:00:00Z", EndTime: "2026-03-01T12:00:00Z"})
	req := httptest.NewRequest(http.MethodPost, "/trainers/1/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got AvailabilityWindow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 5, got.ID)
}

func TestAddWindowHandlerOverlapConflict(t *testing.T) {
	svc := new(MockTrainerService)
	router := setupRouter(svc)

	svc.On("AddWindow", mock.Anything, 1, mock.Anything).Return(nil, ErrWindowOverlap)

	body, _ := json.Marshal(AddWindowRequest{StartTime: "2026-03-01T09:00:00Z", EndTime: "2026-03-01T12:00:00Z"})
	req := httptest.NewRequest(http.MethodPost, "/trainers/1/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddWindowHandlerBadTrainerID(t *testing.T) {
	svc := new(MockTrainerService)
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/trainers/abc/availability", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWindowsHandlerNotFound(t *testing.T) {
	svc := new(MockTrainerService)
	router := setupRouter(svc)

	svc.On("GetWindows", mock.Anything, 9).Return(nil, ErrTrainerNotFound)

	req := httptest.NewRequest(http.MethodGet, "/trainers/9/availability", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
