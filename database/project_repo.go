package database

import (
	"context"
	"errors"

	"github.com/jjmunozz/StrategicTeam-SGC/errs"
	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const projectEntity = "Proyecto"

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns a page of projects ordered by id
func (r *ProjectRepo) FindAll(ctx context.Context, skip, limit int) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or a NotFound error
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound(projectEntity)
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// Update writes every column of an existing project and touches fecha_actualizacion
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// SetState changes the lifecycle state of a project
func (r *ProjectRepo) SetState(ctx context.Context, id uint, state models.ProjectState) error {
	result := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Update("estado", state)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound(projectEntity)
	}
	return nil
}

// Delete removes a project and all of its answers
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proyecto_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound(projectEntity)
		}
		return nil
	})
}
