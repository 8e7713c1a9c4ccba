package api

import (
	"net/http"

	"github.com/jjmunozz/StrategicTeam-SGC/errs"
	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"github.com/jjmunozz/StrategicTeam-SGC/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type diagnosticHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.DiagnosticService
}

func newDiagnosticHandler(service *services.DiagnosticService) diagnosticHandler {
	logger := log.With().Str("handlerName", "diagnosticHandler").Logger()

	return diagnosticHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getRequirements retrieves the ISO 9001 questionnaire
// @Summary List requirements
// @Description Returns every requirement ordered by chapter then id
// @Tags Diagnostico
// @Produce json
// @Success 200 {array} models.Requirement "Questionnaire"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching requirements"
// @Router /diagnostico/requisitos [get]
func (h diagnosticHandler) getRequirements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requirements, err := h.service.ListRequirements(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "requirements", err))
			return
		}

		h.responder.WriteJSON(w, requirements)
	}
}

// submitAnswers stores a batch of answers for a project
// @Summary Submit answers
// @Description Upserts one answer per requirement and moves the project to EN_DIAGNOSTICO.
// @Description The batch is rejected as a whole when any requirement id is unknown.
// @Tags Diagnostico
// @Accept json
// @Produce json
// @Param submission body models.AnswerSubmission true "Answers"
// @Success 201 {array} models.Answer "Stored answers"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 422 {object} ErrorResponse "Invalid submission or unknown requirements"
// @Router /diagnostico/respuestas/ [post]
func (h diagnosticHandler) submitAnswers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := readBody(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, err)
			return
		}

		var submission models.AnswerSubmission
		if err := decodeBody(bodyBytes, &submission, "submission"); err != nil {
			h.logger.Warn().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode submission request body")
			h.responder.WriteError(w, err)
			return
		}

		if submission.ProjectID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("proyecto_id"))
			return
		}
		if submission.Answers == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("respuestas"))
			return
		}

		answers, err := h.service.SubmitAnswers(r.Context(), submission.ProjectID, submission.Answers)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("submit", "answers", err))
			return
		}

		h.logger.Info().
			Uint("projectID", submission.ProjectID).
			Int("answers", len(answers)).
			Msg("answers submitted")
		h.responder.WriteJSONStatus(w, http.StatusCreated, answers)
	}
}

// getMetrics computes compliance percentages for a project
// @Summary Project metrics
// @Tags Diagnostico
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.DiagnosticMetrics "Compliance per chapter and overall"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /diagnostico/{projectID}/metricas [get]
func (h diagnosticHandler) getMetrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		metrics, err := h.service.ComputeMetrics(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("compute", "metrics", err))
			return
		}

		h.responder.WriteJSON(w, metrics)
	}
}

// getAnswers retrieves the answers recorded for a project
// @Summary Project answers
// @Tags Diagnostico
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {array} models.Answer "Answers ordered by chapter then requirement"
// @Router /diagnostico/{projectID}/respuestas [get]
func (h diagnosticHandler) getAnswers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		answers, err := h.service.ListAnswers(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "answers", err))
			return
		}

		h.responder.WriteJSON(w, answers)
	}
}
