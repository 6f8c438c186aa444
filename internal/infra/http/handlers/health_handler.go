package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

type HealthHandler struct {
	WorkbookPath string
	StartTime    time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(workbookPath string) *HealthHandler {
	return &HealthHandler{WorkbookPath: workbookPath, StartTime: time.Now()}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if _, err := os.Stat(h.WorkbookPath); err != nil {
		deps["workbook"] = fmt.Sprintf("unhealthy: %v", err)
	} else {
		deps["workbook"] = "healthy"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
