package database

import (
	"context"
	"sort"

	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequirementRepo struct {
	db *gorm.DB
}

func NewRequirementRepo(db *gorm.DB) *RequirementRepo {
	return &RequirementRepo{db}
}

// FindAll returns the catalog ordered by chapter then id
func (r *RequirementRepo) FindAll(ctx context.Context) ([]*models.Requirement, error) {
	requirements := []*models.Requirement{}
	err := r.db.WithContext(ctx).Order("capitulo").Order("id").Find(&requirements).Error
	return requirements, err
}

// Count returns the number of catalog entries
func (r *RequirementRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Requirement{}).Count(&count).Error
	return count, err
}

// FindMissing returns, sorted and without repeats, the ids that are not in the catalog
func (r *RequirementRepo) FindMissing(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uint
	if err := r.db.WithContext(ctx).Model(&models.Requirement{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	known := make(map[uint]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []uint
	for _, id := range ids {
		if _, ok := known[id]; ok {
			continue
		}
		known[id] = struct{}{}
		missing = append(missing, id)
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing, nil
}

// CountByChapter returns how many requirements each chapter has, ascending by chapter.
// Affirmative is always zero.
func (r *RequirementRepo) CountByChapter(ctx context.Context) ([]models.ChapterCount, error) {
	counts := []models.ChapterCount{}
	err := r.db.WithContext(ctx).
		Model(&models.Requirement{}).
		Select("capitulo AS chapter, COUNT(id) AS total, 0 AS affirmative").
		Group("capitulo").
		Order("capitulo").
		Scan(&counts).Error
	return counts, err
}

// Seed inserts requirements when the catalog is empty and reports how many
// rows were written. A non-empty catalog is left untouched.
func (r *RequirementRepo) Seed(ctx context.Context, requirements []models.Requirement) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Requirement{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(requirements) == 0 {
			return nil
		}

		rows := make([]models.Requirement, len(requirements))
		copy(rows, requirements)
		if err := tx.Omit(clause.Associations).CreateInBatches(&rows, 100).Error; err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	return inserted, err
}
