package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/editrequest"
	"github.com/workpulse-hq/attendance-board-go/internal/handler/http/response"
)

type EditRequestHandler struct {
	editRequestService editrequest.EditRequestService
}

func NewEditRequestHandler(editRequestService editrequest.EditRequestService) EditRequestHandler {
	return EditRequestHandler{editRequestService: editRequestService}
}

// List serves the edit-request review queue, optionally filtered by status.
// Query params: status, page, limit.
func (h EditRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := editrequest.ListFilter{
		Status: editrequest.EditRequestStatus(r.URL.Query().Get("status")),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	result, err := h.editRequestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// Approve applies the requested clock-time correction.
func (h EditRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	result, err := h.editRequestService.Approve(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "edit request approved", result)
}

type rejectEditRequestBody struct {
	Comment string `json:"comment"`
}

// Reject declines the correction. A non-empty comment is required.
func (h EditRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	var body rejectEditRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.editRequestService.Reject(r.Context(), requestID, body.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "edit request rejected", result)
}
