package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type ResultsHandler struct {
	results ports.ResultsService
	cache   ports.CacheService
}

func NewResultsHandler(results ports.ResultsService, cache ports.CacheService) *ResultsHandler {
	return &ResultsHandler{
		results: results,
		cache:   cache,
	}
}

// GetResults godoc
// @Summary      Returns aggregated poll results
// @Description  Live per-category counts over all responses. `?cached=1` serves the last materialized snapshot when one exists.
// @Tags         results
// @Produce      json
// @Success      200
// @Failure      500
// @Router       /results [get]
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("cached") == "1" && h.cache != nil {
		cached, err := h.cache.CachedResults(r.Context())
		if err != nil {
			logrus.WithError(err).Error("failed to read results cache")
			writeError(w, http.StatusInternalServerError, "Failed to fetch results")
			return
		}
		if cached != nil {
			writeData(w, http.StatusOK, cached.Results)
			return
		}
		// No snapshot yet, fall through to the live reduce.
	}

	results, err := h.results.Aggregate(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to aggregate results")
		writeError(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	writeData(w, http.StatusOK, results)
}
