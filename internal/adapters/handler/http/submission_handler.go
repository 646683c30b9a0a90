package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
	}
}

type submitPollRequest struct {
	Candidate    string              `json:"presidential_candidate"`
	KeyIssues    []string            `json:"key_issues"`
	Demographics domain.Demographics `json:"demographics"`
	Consent      bool                `json:"consent"`
}

// SubmitPoll godoc
// @Summary      Submits one anonymous poll response
// @Description  Accepts a candidate choice, key issues and demographics. One response per network address; repeats get a 409.
// @Tags         poll
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Failure      409
// @Failure      500
// @Router       /poll [post]
func (h *SubmissionHandler) SubmitPoll(w http.ResponseWriter, r *http.Request) {
	var req submitPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.SubmissionInput{
		Candidate:      req.Candidate,
		KeyIssues:      req.KeyIssues,
		Demographics:   req.Demographics,
		Consent:        req.Consent,
		RemoteIP:       clientIP(r),
		UserAgent:      r.Header.Get("User-Agent"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}

	if _, err := h.service.Submit(r.Context(), input); err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrConsentRequired):
			writeError(w, http.StatusBadRequest, domain.ErrConsentRequired.Error())
		case errors.As(err, &validationErr):
			writeError(w, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, domain.ErrAlreadyParticipated):
			writeError(w, http.StatusConflict, "You have already participated in this poll. Thank you for your contribution!")
		default:
			logrus.WithError(err).Error("failed to submit response")
			writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	writeMessage(w, http.StatusOK, "Thank you for participating! Your response has been recorded anonymously.")
}

type participationResponse struct {
	HasVoted bool `json:"has_voted"`
}

// CheckParticipation godoc
// @Summary      Reports whether this address has already participated
// @Description  Lets clients disable the form up front instead of learning about the duplicate on submit.
// @Tags         poll
// @Produce      json
// @Success      200
// @Failure      500
// @Router       /poll/status [get]
func (h *SubmissionHandler) CheckParticipation(w http.ResponseWriter, r *http.Request) {
	hasVoted, err := h.service.HasParticipated(r.Context(), clientIP(r))
	if err != nil {
		logrus.WithError(err).Error("failed to check participation")
		writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	writeData(w, http.StatusOK, participationResponse{HasVoted: hasVoted})
}

// clientIP resolves the originating address: first hop of X-Forwarded-For,
// then X-Real-IP, else "unknown". RemoteAddr is deliberately not used — the
// service sits behind a proxy and would otherwise dedupe on the proxy itself.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
