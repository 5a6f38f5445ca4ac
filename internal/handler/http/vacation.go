package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
	"github.com/careplan/careplan-backend-go/internal/handler/http/middleware"
	"github.com/careplan/careplan-backend-go/internal/handler/http/response"
	vacationservice "github.com/careplan/careplan-backend-go/internal/service/vacation"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Deny(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	MyBalance(w http.ResponseWriter, r *http.Request)
	PendingApprovals(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService *vacationservice.Service
}

func NewVacationHandler(vacationService *vacationservice.Service) VacationHandler {
	return &vacationHandlerImpl{vacationService: vacationService}
}

func (h *vacationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req vacation.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r.Context())

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.vacationService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request submitted", vacation.ToResponse(created))
}

func (h *vacationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	approved, err := h.vacationService.Approve(r.Context(), requestID, middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request approved", vacation.ToResponse(approved))
}

func (h *vacationHandlerImpl) Deny(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req vacation.DenyRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	denied, err := h.vacationService.Deny(r.Context(), requestID, middleware.EmployeeID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request denied", vacation.ToResponse(denied))
}

func (h *vacationHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	// Body is optional for cancellation.
	var req vacation.CancelRequestRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	cancelled, err := h.vacationService.Cancel(r.Context(), requestID, middleware.EmployeeID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request cancelled", vacation.ToResponse(cancelled))
}

func (h *vacationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	req, err := h.vacationService.GetRequest(r.Context(), requestID, middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacation.ToResponse(req))
}

func (h *vacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseRequestFilter(r)

	requests, total, err := h.vacationService.ListRequests(r.Context(), middleware.EmployeeID(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, vacation.ToResponse(req))
	}

	response.SuccessWithMeta(w, responses, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *vacationHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	filter := parseRequestFilter(r)

	requests, total, err := h.vacationService.MyRequests(r.Context(), middleware.EmployeeID(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, vacation.ToResponse(req))
	}

	response.SuccessWithMeta(w, responses, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *vacationHandlerImpl) MyBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.vacationService.Balance(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

func (h *vacationHandlerImpl) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	requests, err := h.vacationService.PendingApprovals(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, vacation.ToResponse(req))
	}

	response.Success(w, responses)
}

func (h *vacationHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "start must be a valid date (YYYY-MM-DD)", nil)
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "end must be a valid date (YYYY-MM-DD)", nil)
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "end must not be before start", nil)
		return
	}

	var locationID *string
	if loc := r.URL.Query().Get("location_id"); loc != "" {
		locationID = &loc
	}

	entries, err := h.vacationService.TeamCalendar(r.Context(), start, end, locationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func parseRequestFilter(r *http.Request) vacation.RequestFilter {
	q := r.URL.Query()
	filter := vacation.RequestFilter{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}
	if reqType := q.Get("request_type"); reqType != "" {
		filter.RequestType = &reqType
	}
	if start := q.Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := q.Get("end_date"); end != "" {
		filter.EndDate = &end
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	return filter
}
