package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"stratplan/internal/audit"
	"stratplan/internal/httpx"
	"stratplan/internal/narrative"
	"stratplan/internal/plan"
	"stratplan/internal/request"
)

// GenerateResponse is the success body of POST /generate_plan.
type GenerateResponse struct {
	Plan      plan.PlanRecord `json:"plan"`
	Narrative string          `json:"narrative"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req request.PlanRequest
	if err := httpx.ReadJSON(r, &req, s.cfg.MaxRequestBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json body: "+err.Error())
		return
	}

	requestID := uuid.NewString()
	in, err := request.Convert(req, time.Now().UTC().Year())
	if err != nil {
		httpx.WriteError(w, intakeStatus(err), err.Error())
		return
	}
	in.ID = "PLAN-" + requestID

	record := plan.Assemble(in)
	text, err := narrative.Narrate(record)
	if err != nil {
		if errors.Is(err, narrative.ErrMissingSwot) {
			httpx.WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "generate narrative: "+err.Error())
		return
	}

	if s.audit != nil {
		event := audit.PlanGenerated{
			RequestID:   requestID,
			Company:     record.Profile.Name,
			TargetYears: len(record.Targets),
			Narrative:   len(text),
		}
		if logErr := s.audit.LogEvent("api", "plan_generated", event); logErr != nil {
			log.Printf("audit log failed: %v", logErr)
		}
	}

	httpx.WriteJSON(w, http.StatusOK, GenerateResponse{Plan: record, Narrative: text})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// intakeStatus maps typed intake failures onto client error statuses.
func intakeStatus(err error) int {
	var malformed *request.MalformedRequestError
	var invalid *request.InvalidTargetValueError
	switch {
	case errors.As(err, &malformed), errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
