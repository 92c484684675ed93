package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Richard-klement/va-squash-constantia/internal/api"
)

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func bindAndRespond(body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", func(c *gin.Context) {
		var req registerPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			api.RespondBindingError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func TestRespondBindingError(t *testing.T) {
	t.Run("valid payload binds", func(t *testing.T) {
		w := bindAndRespond(`{"name":"Alice","email":"a@example.com","password":"password123"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reports each failed field", func(t *testing.T) {
		w := bindAndRespond(`{"name":"","email":"not-an-email","password":"short"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error   string                `json:"error"`
			Details []api.ValidationError `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation failed", resp.Error)
		require.Len(t, resp.Details, 3)

		byField := make(map[string]api.ValidationError)
		for _, d := range resp.Details {
			byField[d.Field] = d
		}
		assert.Equal(t, "required", byField["Name"].Tag)
		assert.Equal(t, "Name is required", byField["Name"].Message)
		assert.Equal(t, "email", byField["Email"].Tag)
		assert.Equal(t, "min", byField["Password"].Tag)
		assert.Equal(t, "Password must be at least 8 characters", byField["Password"].Message)
	})

	t.Run("malformed JSON gets the plain envelope", func(t *testing.T) {
		w := bindAndRespond(`{"name":`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	})
}
