package services

import (
	"context"
	"time"

	"github.com/jjmunozz/StrategicTeam-SGC/database"
	"github.com/jjmunozz/StrategicTeam-SGC/errs"
	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DiagnosticService records questionnaire answers and reports compliance.
type DiagnosticService struct {
	database database.Database
	logger   zerolog.Logger
	now      func() time.Time
}

func NewDiagnosticService(db database.Database) *DiagnosticService {
	return &DiagnosticService{
		database: db,
		logger:   log.With().Str("service", "DiagnosticService").Logger(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ListRequirements returns the questionnaire ordered by chapter then id.
func (s *DiagnosticService) ListRequirements(ctx context.Context) ([]*models.Requirement, error) {
	return s.database.RequirementRepo().FindAll(ctx)
}

// ListAnswers returns the answers stored for a project. An unknown project
// yields an empty list.
func (s *DiagnosticService) ListAnswers(ctx context.Context, projectID uint) ([]*models.Answer, error) {
	return s.database.AnswerRepo().FindByProject(ctx, projectID)
}

// SubmitAnswers validates the whole batch against the catalog, upserts one
// answer per requirement and moves the project to EN_DIAGNOSTICO, all in one
// transaction. Nothing is written when any requirement id is unknown.
// The returned answers follow the order of the (deduplicated) input.
func (s *DiagnosticService) SubmitAnswers(ctx context.Context, projectID uint, items []models.AnswerItem) ([]*models.Answer, error) {
	items = models.Dedupe(items)
	requirementIDs := make([]uint, len(items))
	for i, item := range items {
		requirementIDs[i] = item.RequirementID
	}

	var result []*models.Answer
	err := s.database.Transaction(ctx, func(tx database.Database) error {
		if _, err := tx.ProjectRepo().FindByID(ctx, projectID); err != nil {
			return err
		}

		missing, err := tx.RequirementRepo().FindMissing(ctx, requirementIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return errs.NewUnknownRequirementsError(missing)
		}

		answeredAt := s.now()
		rows := make([]models.Answer, len(items))
		for i, item := range items {
			rows[i] = models.Answer{
				ProjectID:     projectID,
				RequirementID: item.RequirementID,
				Compliant:     item.Compliant,
				Evidence:      item.Evidence,
				AnsweredAt:    answeredAt,
			}
		}
		if err := tx.AnswerRepo().Upsert(ctx, rows); err != nil {
			return err
		}

		if err := tx.ProjectRepo().SetState(ctx, projectID, models.StateDiagnosing); err != nil {
			return err
		}

		stored, err := tx.AnswerRepo().FindByRequirements(ctx, projectID, requirementIDs)
		if err != nil {
			return err
		}
		result = inRequirementOrder(stored, requirementIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Uint("projectID", projectID).
		Int("answers", len(result)).
		Msg("diagnostic answers stored")
	return result, nil
}

// ComputeMetrics reports compliance per chapter and overall for a project.
// A project without answers gets every catalog chapter at 0%.
func (s *DiagnosticService) ComputeMetrics(ctx context.Context, projectID uint) (models.DiagnosticMetrics, error) {
	project, err := s.database.ProjectRepo().FindByID(ctx, projectID)
	if err != nil {
		return models.DiagnosticMetrics{}, err
	}

	counts, err := s.database.AnswerRepo().CountByChapter(ctx, projectID)
	if err != nil {
		return models.DiagnosticMetrics{}, err
	}
	if len(counts) == 0 {
		counts, err = s.database.RequirementRepo().CountByChapter(ctx)
		if err != nil {
			return models.DiagnosticMetrics{}, err
		}
	}

	return models.BuildMetrics(project, counts), nil
}

func inRequirementOrder(answers []*models.Answer, requirementIDs []uint) []*models.Answer {
	byRequirement := make(map[uint]*models.Answer, len(answers))
	for _, a := range answers {
		byRequirement[a.RequirementID] = a
	}

	ordered := make([]*models.Answer, 0, len(requirementIDs))
	for _, id := range requirementIDs {
		if a, ok := byRequirement[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered
}
