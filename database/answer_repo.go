package database

import (
	"context"

	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepo struct {
	db *gorm.DB
}

func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db}
}

// FindByProject returns a project's answers ordered by requirement chapter then requirement id
func (r *AnswerRepo) FindByProject(ctx context.Context, projectID uint) ([]*models.Answer, error) {
	answers := []*models.Answer{}
	err := r.db.WithContext(ctx).
		Select("respuestas_diagnostico.*").
		Joins("JOIN requisitos_iso9001 ON requisitos_iso9001.id = respuestas_diagnostico.requisito_id").
		Where("respuestas_diagnostico.proyecto_id = ?", projectID).
		Order("requisitos_iso9001.capitulo").
		Order("respuestas_diagnostico.requisito_id").
		Find(&answers).Error
	return answers, err
}

// FindByRequirements returns the project's answers for the given requirement ids, in no particular order
func (r *AnswerRepo) FindByRequirements(ctx context.Context, projectID uint, requirementIDs []uint) ([]*models.Answer, error) {
	answers := []*models.Answer{}
	if len(requirementIDs) == 0 {
		return answers, nil
	}
	err := r.db.WithContext(ctx).
		Where("proyecto_id = ? AND requisito_id IN ?", projectID, requirementIDs).
		Find(&answers).Error
	return answers, err
}

// CountByProject returns the number of answers stored for a project
func (r *AnswerRepo) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Answer{}).Where("proyecto_id = ?", projectID).Count(&count).Error
	return count, err
}

// Upsert writes every answer in one statement. Rows that collide on
// (proyecto_id, requisito_id) have cumple, evidencia and fecha_respuesta
// overwritten; the others are inserted. Requirement ids must be unique
// within answers.
func (r *AnswerRepo) Upsert(ctx context.Context, answers []models.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "proyecto_id"}, {Name: "requisito_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"cumple",
				"evidencia",
				"fecha_respuesta",
			}),
		}).
		Create(&answers).Error
}

// CountByChapter aggregates a project's answers per requirement chapter,
// ascending by chapter. Chapters without answers are absent.
func (r *AnswerRepo) CountByChapter(ctx context.Context, projectID uint) ([]models.ChapterCount, error) {
	counts := []models.ChapterCount{}
	err := r.db.WithContext(ctx).
		Table("respuestas_diagnostico AS r").
		Select("q.capitulo AS chapter, COUNT(r.id) AS total, " +
			"COALESCE(SUM(CASE WHEN r.cumple THEN 1 ELSE 0 END), 0) AS affirmative").
		Joins("JOIN requisitos_iso9001 AS q ON q.id = r.requisito_id").
		Where("r.proyecto_id = ?", projectID).
		Group("q.capitulo").
		Order("q.capitulo").
		Scan(&counts).Error
	return counts, err
}
