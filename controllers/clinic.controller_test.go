package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-scheduler/config"
	"clinic-scheduler/controllers"
	"clinic-scheduler/models"
	"clinic-scheduler/routes"
	"clinic-scheduler/scheduler"
	"clinic-scheduler/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	err := s.ReplaceDoctors(context.Background(), []models.Doctor{
		{DoctorID: "D1", Name: "Dr. Asha Rao", Specialty: "Cardiology", Schedule: "Mon-Fri 09:00-13:00"},
	})
	require.NoError(t, err)

	engine := scheduler.New(s, time.UTC, zerolog.Nop())
	cfg := &config.Config{EmergencyNumber: "+91-1122334455", Location: time.UTC}

	r := gin.New()
	routes.ClinicRoutes(r.Group("/api/v1"), controllers.New(engine, cfg))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w, payload := doJSON(t, r, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestCreateBookingReturnsConfirmation(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodPost, "/api/v1/doctors/D1/bookings",
		`{"patient_name":"Meera Nair","age":"30","contact":"555-0100","date":"2030-01-02","time":"10:00"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(1), payload["queue_position"])
	appointment := payload["appointment"].(map[string]any)
	assert.Equal(t, "booked", appointment["status"])
	assert.Equal(t, "D1", appointment["doctor_id"])
	patient := payload["patient"].(map[string]any)
	assert.Equal(t, "PAT0001", patient["patient_id"])
}

func TestCreateBookingValidationError(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodPost, "/api/v1/doctors/D1/bookings",
		`{"patient_name":"Meera Nair","contact":"","date":"2030-01-02","time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", payload["code"])
}

func TestCreateBookingUnknownDoctor(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodPost, "/api/v1/doctors/D404/bookings",
		`{"patient_name":"Meera Nair","contact":"555-0100","date":"2030-01-02","time":"10:00"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", payload["code"])
}

func TestQueueEndpointReturnsOrderedQueue(t *testing.T) {
	r := newTestRouter(t)

	for _, contact := range []string{"555-0100", "555-0200"} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/doctors/D1/bookings",
			`{"patient_name":"Patient `+contact+`","contact":"`+contact+`","date":"2030-01-02","time":"10:00"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, payload := doJSON(t, r, http.MethodGet, "/api/v1/queue/D1?date=2030-01-02", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), payload["count"])

	queue := payload["queue"].([]any)
	require.Len(t, queue, 2)
	first := queue[0].(map[string]any)
	assert.Equal(t, "PAT0001", first["patient_id"])
	assert.Equal(t, float64(1), first["queue_position"])
}

func TestQueueEndpointEmptyQueue(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodGet, "/api/v1/queue/D1?date=2030-03-03", "")
	require.Equal(t, http.StatusOK, w.Code)

	queue, ok := payload["queue"].([]any)
	require.True(t, ok, "queue must be a list, got %v", payload["queue"])
	assert.Empty(t, queue)
	assert.Equal(t, float64(0), payload["count"])
}

func TestDoctorsEndpointIncludesBookedCounts(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodGet, "/api/v1/doctors", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+91-1122334455", payload["emergency_number"])

	doctors := payload["doctors"].([]any)
	require.Len(t, doctors, 1)
	assert.Equal(t, float64(0), doctors[0].(map[string]any)["booked_count"])
}

func TestDoctorProfileEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/doctors/D1/bookings",
		`{"patient_name":"Meera Nair","contact":"555-0100","date":"2030-01-02","time":"10:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, payload := doJSON(t, r, http.MethodGet, "/api/v1/doctors/D1", "")
	require.Equal(t, http.StatusOK, w.Code)

	doctor := payload["doctor"].(map[string]any)
	assert.Equal(t, "Dr. Asha Rao", doctor["name"])
	upcoming := payload["upcoming"].([]any)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Meera Nair", upcoming[0].(map[string]any)["patient_name"])
}
