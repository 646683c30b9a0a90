package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type HealthHandler struct {
	repo ports.ResponseRepository
}

func NewHealthHandler(repo ports.ResponseRepository) *HealthHandler {
	return &HealthHandler{
		repo: repo,
	}
}

type healthResponse struct {
	Status         string `json:"status"`
	TotalResponses int64  `json:"total_responses"`
}

// Check exercises the store with a cheap count so the probe fails when the
// database is unreachable, not just when the process is up.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.CountAll(r.Context())
	if err != nil {
		logrus.WithError(err).Error("health check failed")
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	writeData(w, http.StatusOK, healthResponse{Status: "ok", TotalResponses: count})
}
