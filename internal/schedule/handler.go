package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Richard-klement/va-squash-constantia/internal/api"
	"github.com/Richard-klement/va-squash-constantia/internal/apperror"
	"github.com/Richard-klement/va-squash-constantia/internal/auth"
	"github.com/Richard-klement/va-squash-constantia/internal/booking"
	"github.com/Richard-klement/va-squash-constantia/internal/court"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, grid *court.SlotGrid) *Handler {
	return &Handler{
		service: NewService(court.NewRepository(db), booking.NewRepository(db), grid),
	}
}

// NewHandlerWithService wires an explicit service, used by tests.
func NewHandlerWithService(s Service) *Handler {
	return &Handler{service: s}
}

// GetGrid godoc
// @Summary      Day schedule grid
// @Description  Returns the court x slot matrix for one date, with each cell marked free or booked.
// @Tags         schedule
// @Produce      json
// @Param        date  query     string  true  "Calendar date (YYYY-MM-DD)"
// @Success      200   {object}  DayGrid
// @Failure      400   {object}  gin.H
// @Failure      500   {object}  gin.H
// @Router       /schedule [get]
func (h *Handler) GetGrid(c *gin.Context) {
	grid, err := h.service.Grid(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(apperror.StatusOf(err), api.ErrorResponse{Error: apperror.MessageOf(err)})
		return
	}

	grid.CurrentUserID, _ = auth.GetUserID(c)
	c.JSON(http.StatusOK, grid)
}

// GetMonth godoc
// @Summary      Month booking density
// @Description  Returns per-day booking counts for one month, including zero-booking days.
// @Tags         schedule
// @Produce      json
// @Param        month  query     string  true  "Month (YYYY-MM)"
// @Success      200    {object}  MonthSummary
// @Failure      400    {object}  gin.H
// @Failure      500    {object}  gin.H
// @Router       /schedule/month [get]
func (h *Handler) GetMonth(c *gin.Context) {
	summary, err := h.service.Month(c.Request.Context(), c.Query("month"))
	if err != nil {
		c.JSON(apperror.StatusOf(err), api.ErrorResponse{Error: apperror.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, summary)
}
