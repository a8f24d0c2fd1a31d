package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/live"
	"github.com/workpulse-hq/attendance-board-go/internal/handler/http/response"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/jwt"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/sse"
	serviceLive "github.com/workpulse-hq/attendance-board-go/internal/service/live"
)

type LiveHandler struct {
	reconciler *serviceLive.Reconciler
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewLiveHandler(reconciler *serviceLive.Reconciler, hub *sse.Hub, jwtService jwt.Service) LiveHandler {
	return LiveHandler{
		reconciler: reconciler,
		hub:        hub,
		jwtService: jwtService,
	}
}

// Statuses returns the last committed live-status snapshot. Never blocks on
// a poll.
func (h LiveHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reconciler.Statuses())
}

// Feed returns the recent-activity feed, newest first.
func (h LiveHandler) Feed(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reconciler.Feed())
}

// IngestEvent receives an advisory push event from the clock-in
// collaborator. The event only feeds the activity stream and triggers an
// authoritative poll; it never writes live status directly.
func (h LiveHandler) IngestEvent(w http.ResponseWriter, r *http.Request) {
	var event live.PushEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		response.BadRequest(w, "invalid event payload", nil)
		return
	}

	entry, added, err := h.reconciler.HandlePushEvent(event)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if added {
		h.hub.Broadcast(sse.Event{Event: string(event.Type), Data: entry})
	}

	response.Accepted(w, "event accepted")
}

// SSEToken mints a short-lived token for opening the event stream.
func (h LiveHandler) SSEToken(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		response.InternalServerError(w, "failed to generate SSE token")
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream serves the advisory event stream over SSE. Authenticated with the
// short-lived token because EventSource cannot set headers.
func (h LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		response.Unauthorized(w, "token query parameter is required")
		return
	}
	if _, err := h.jwtService.ValidateSSEToken(tokenString); err != nil {
		response.Unauthorized(w, "invalid SSE token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	// Initial snapshot so a fresh dashboard doesn't wait for activity.
	if payload, err := json.Marshal(h.reconciler.Statuses()); err == nil {
		fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
