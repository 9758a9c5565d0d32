package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/gone", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/things/:id", "200"))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/gone", nil))

	// Labeled by route template, not concrete path.
	got := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/things/:id", "200"))
	if got-before != 3 {
		t.Fatalf("counter delta = %v, want 3", got-before)
	}
	if testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/gone", "404")) < 1 {
		t.Fatal("404 not counted")
	}
}

func TestMetrics_InFlightReturnsToZero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/", func(c *gin.Context) {
		if testutil.ToFloat64(reqInFlight) < 1 {
			t.Error("in-flight gauge not incremented during request")
		}
		c.Status(http.StatusOK)
	})

	base := testutil.ToFloat64(reqInFlight)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got := testutil.ToFloat64(reqInFlight); got != base {
		t.Fatalf("in-flight gauge = %v after request, want %v", got, base)
	}
}
