package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware_CountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/servicos/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/servicos/:id", "200"))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/servicos/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/servicos/:id", "200"))
	assert.Equal(t, before+2, after)
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(emailsSent.WithLabelValues("welcome", "error"))
	RecordEmail("welcome", errors.New("smtp down"))
	assert.Equal(t, before+1, testutil.ToFloat64(emailsSent.WithLabelValues("welcome", "error")))

	before = testutil.ToFloat64(jobRuns.WithLabelValues("reminder", "true"))
	RecordJobRun("reminder", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(jobRuns.WithLabelValues("reminder", "true")))
}

func TestHandler_ServesRegistry(t *testing.T) {
	RecordReviewCreated()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barbearia_reviews_created_total")
}
