package api

import (
	"net/http"

	"github.com/jjmunozz/StrategicTeam-SGC/database"
	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	database    database.Database
	projectRepo *database.ProjectRepo
}

func newProjectHandler(db database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		database:    db,
		projectRepo: db.ProjectRepo(),
	}
}

// getAllProjects retrieves a page of projects
// @Summary List projects
// @Description Retrieves projects ordered by id, paginated with skip and limit
// @Tags Proyectos
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {array} models.Project "List of projects"
// @Failure 422 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /proyectos/ [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := parsePagination(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projectRepo.FindAll(r.Context(), skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Proyectos
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 422 {object} ErrorResponse "Invalid projectID"
// @Router /proyectos/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project in state ACTIVO
// @Summary Create project
// @Tags Proyectos
// @Accept json
// @Produce json
// @Param project body models.ProjectInput true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 422 {object} ErrorResponse "Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /proyectos/ [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := readBody(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, err)
			return
		}

		var input models.ProjectInput
		if err := decodeBody(bodyBytes, &input, "project"); err != nil {
			h.logger.Warn().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		project, err := models.NewProject(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(r.Context(), project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Uint("projectID", project.ID).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject applies a partial update to an existing project
// @Summary Update project
// @Description Only the fields present in the body are changed
// @Tags Proyectos
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.ProjectUpdate true "Fields to update"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 422 {object} ErrorResponse "Invalid project data"
// @Router /proyectos/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := readBody(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, err)
			return
		}

		var update models.ProjectUpdate
		if err := decodeBody(bodyBytes, &update, "project"); err != nil {
			h.logger.Warn().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		var updated *models.Project
		err = h.database.Transaction(r.Context(), func(tx database.Database) error {
			project, err := tx.ProjectRepo().FindByID(r.Context(), projectID)
			if err != nil {
				return err
			}
			if err := update.Validate(); err != nil {
				return err
			}
			update.ApplyTo(project)
			if err := tx.ProjectRepo().Update(r.Context(), project); err != nil {
				return err
			}
			updated = project
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project and its answers
// @Summary Delete project
// @Tags Proyectos
// @Param projectID path int true "Project ID"
// @Success 204 "Project deleted"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /proyectos/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.logger.Info().Uint("projectID", projectID).Msg("project deleted")
		h.responder.WriteNoContent(w)
	}
}
