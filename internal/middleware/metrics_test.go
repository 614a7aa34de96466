package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	labels := prometheus.Labels{"method": http.MethodGet, "route": "/orders/{id}", "status": "404"}
	before := testutil.ToFloat64(httpRequestsTotal.With(labels))

	for _, id := range []string{"o1", "o2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(httpRequestsTotal.With(labels))-before)
}
