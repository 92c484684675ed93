package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Richard-klement/va-squash-constantia/internal/api"
	"github.com/Richard-klement/va-squash-constantia/internal/apperror"
	"github.com/Richard-klement/va-squash-constantia/internal/auth"
	"github.com/Richard-klement/va-squash-constantia/internal/cache"
	"github.com/Richard-klement/va-squash-constantia/internal/court"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, grid *court.SlotGrid, c *cache.Cache) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), court.NewRepository(db), grid, c),
	}
}

// NewHandlerWithService wires an explicit service, used by tests.
func NewHandlerWithService(s Service) *Handler {
	return &Handler{service: s}
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperror.StatusOf(err), api.ErrorResponse{Error: apperror.MessageOf(err)})
}

// ListByDate godoc
// @Summary      List bookings for a date
// @Description  Returns all bookings for the given calendar date, ordered by start time then court.
// @Tags         bookings
// @Produce      json
// @Param        date  query     string  true  "Calendar date (YYYY-MM-DD)"
// @Success      200   {array}   BookingView
// @Failure      400   {object}  gin.H
// @Failure      500   {object}  gin.H
// @Router       /bookings [get]
func (h *Handler) ListByDate(c *gin.Context) {
	date := c.Query("date")

	views, err := h.service.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	currentUserID, _ := auth.GetUserID(c)
	for i := range views {
		views[i].CurrentUserID = currentUserID
	}

	c.JSON(http.StatusOK, views)
}

// Create godoc
// @Summary      Create booking
// @Description  Books a court slot for the authenticated member.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Slot selection"
// @Success      200      {object}  BookingView
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	view, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	view.CurrentUserID = userID
	c.JSON(http.StatusOK, view)
}

// Delete godoc
// @Summary      Delete booking
// @Description  Permanently removes a booking owned by the authenticated member. A booking that does not exist and one owned by someone else report the same error.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path  int  true  "Booking ID"
// @Success      204
// @Failure      400  {object}  gin.H
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /bookings/{bookingID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, bookingID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAnalytics godoc
// @Summary      Booking analytics
// @Description  Returns booking counts grouped by day or by court over a date range. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        group_by  query     string  false  "Group by dimension (day or court)"
// @Param        from      query     string  true   "Start date (YYYY-MM-DD)"
// @Param        to        query     string  true   "End date (YYYY-MM-DD)"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /admin/analytics/bookings [get]
func (h *Handler) GetAnalytics(c *gin.Context) {
	groupBy := c.DefaultQuery("group_by", "day")
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}

	switch groupBy {
	case "day":
		stats, err := h.service.StatsByDay(c.Request.Context(), from, to)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_by": "day",
			"from":     from,
			"to":       to,
			"data":     stats,
		})
	case "court":
		stats, err := h.service.StatsByCourt(c.Request.Context(), from, to)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_by": "court",
			"from":     from,
			"to":       to,
			"data":     stats,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_by must be 'day' or 'court'"})
	}
}
