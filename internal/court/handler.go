package court

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
	grid *SlotGrid
}

func NewHandler(db *sqlx.DB, grid *SlotGrid) *Handler {
	return &Handler{
		repo: NewRepository(db),
		grid: grid,
	}
}

// ListCourts godoc
// @Summary      List courts
// @Description  Returns the club's active courts.
// @Tags         courts
// @Produce      json
// @Success      200  {array}   Court
// @Failure      500  {object}  gin.H
// @Router       /courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.repo.GetAllCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courts"})
		return
	}

	c.JSON(http.StatusOK, courts)
}

// ListSlots godoc
// @Summary      List time slots
// @Description  Returns the fixed daily slot grid.
// @Tags         courts
// @Produce      json
// @Success      200  {array}  Slot
// @Router       /slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, h.grid.Slots())
}
