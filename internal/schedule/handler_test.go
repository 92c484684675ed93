package schedule_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Richard-klement/va-squash-constantia/internal/booking"
	"github.com/Richard-klement/va-squash-constantia/internal/schedule"
)

type mockScheduleService struct{ mock.Mock }

func (m *mockScheduleService) Grid(ctx context.Context, date string) (*schedule.DayGrid, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.DayGrid), args.Error(1)
}

func (m *mockScheduleService) Month(ctx context.Context, month string) (*schedule.MonthSummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.MonthSummary), args.Error(1)
}

func setupScheduleRouter(svc schedule.Service, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	identity := func(c *gin.Context) {
		if userID > 0 {
			c.Set("user_id", userID)
		}
		c.Next()
	}

	h := schedule.NewHandlerWithService(svc)
	router.GET("/schedule", identity, h.GetGrid)
	router.GET("/schedule/month", identity, h.GetMonth)

	return router
}

func TestGetGridHandler(t *testing.T) {
	t.Run("stamps caller identity on the grid", func(t *testing.T) {
		svc := new(mockScheduleService)
		svc.On("Grid", mock.Anything, "2024-06-01").Return(&schedule.DayGrid{Date: "2024-06-01"}, nil)

		router := setupScheduleRouter(svc, 7)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/schedule?date=2024-06-01", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var got schedule.DayGrid
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 7, got.CurrentUserID)
	})

	t.Run("malformed date maps to 400", func(t *testing.T) {
		svc := new(mockScheduleService)
		svc.On("Grid", mock.Anything, "whenever").Return(nil, booking.ErrInvalidDate)

		router := setupScheduleRouter(svc, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/schedule?date=whenever", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMonthHandler(t *testing.T) {
	svc := new(mockScheduleService)
	svc.On("Month", mock.Anything, "2024-06").Return(&schedule.MonthSummary{
		Month: "2024-06",
		Days:  []schedule.MonthDay{{Date: "2024-06-01", Bookings: 2}},
	}, nil)

	router := setupScheduleRouter(svc, 0)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/schedule/month?month=2024-06", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"2024-06-01"`)
}
