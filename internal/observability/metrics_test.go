package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/workouts/{id}/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/workouts/{id}/", "418"))

	for _, path := range []string{"/workouts/1/", "/workouts/2/"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/workouts/{id}/", "418"))
	if after-before != 2 {
		t.Fatalf("requests_total delta = %v, want 2", after-before)
	}
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(logins.WithLabelValues("failure"))
	RecordLogin(false)
	if got := testutil.ToFloat64(logins.WithLabelValues("failure")); got-before != 1 {
		t.Fatalf("logins_total{outcome=failure} delta = %v, want 1", got-before)
	}

	RecordRegistration()
	RecordWorkoutChange("create")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"fittrack_auth_registrations_total", "fittrack_workouts_changes_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
