package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kerja-workspace/internal/dto"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

func TestEventHandler_Lifecycle(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.login(t, "admin", "123")

	w := env.do(t, http.MethodPost, "/api/events", map[string]interface{}{
		"title":     "Client call",
		"type":      "meeting",
		"date":      "2024-03-01",
		"startTime": "10:00",
		"attendees": []string{"u1"},
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var event models.Event
	decode(t, w, &event)
	assert.Regexp(t, `^e\d+$`, event.ID)
	assert.Equal(t, "2024-03-01", event.EndDate)
	assert.Equal(t, "scheduled event", env.ws.Activities()[0].Action)

	w = env.do(t, http.MethodPatch, "/api/events/"+event.ID, map[string]string{"startTime": "11:30"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rescheduled to 2024-03-01 11:30", env.ws.Activities()[0].Action)

	w = env.do(t, http.MethodGet, "/api/events/"+event.ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/events/"+event.ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled event", env.ws.Activities()[0].Action)

	w = env.do(t, http.MethodGet, "/api/events/"+event.ID, nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodPatch, "/api/events/"+event.ID, map[string]string{"title": "x"}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventHandler_ListRange(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.login(t, "admin", "123")
	env.ws.CreateEvent(models.Event{Title: "Jan", Date: "2024-01-15"})
	env.ws.CreateEvent(models.Event{Title: "Feb", Date: "2024-02-10"})

	w := env.do(t, http.MethodGet, "/api/events?from=2024-02-01&to=2024-02-29", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventListResponse
	decode(t, w, &resp)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Feb", resp.Events[0].Title)

	w = env.do(t, http.MethodGet, "/api/events?from=2024-03-01&to=2024-02-01", nil, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_CreateValidation(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.login(t, "admin", "123")

	w := env.do(t, http.MethodPost, "/api/events", map[string]string{"title": "No date"}, cookies)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.ws.Events())
}
