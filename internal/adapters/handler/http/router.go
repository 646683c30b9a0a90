package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	submissionHandler *SubmissionHandler,
	resultsHandler *ResultsHandler,
	candidateHandler *CandidateHandler,
	eventsHandler *EventsHandler,
	healthHandler *HealthHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.Get("/candidates", candidateHandler.GetCandidates)
		r.Post("/poll", submissionHandler.SubmitPoll)
		r.Get("/poll/status", submissionHandler.CheckParticipation)
		r.Get("/results", resultsHandler.GetResults)
		r.Get("/events", eventsHandler.StreamEvents)
	})

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
