package http

import (
	"net/http"

	"github.com/careplan/careplan-backend-go/internal/handler/http/response"
	dashboardservice "github.com/careplan/careplan-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService *dashboardservice.Service
}

func NewDashboardHandler(dashboardService *dashboardservice.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
