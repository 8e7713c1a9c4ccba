package database

import (
	"context"

	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"gorm.io/gorm"
)

type Database struct {
	db              *gorm.DB
	projectRepo     *ProjectRepo
	requirementRepo *RequirementRepo
	answerRepo      *AnswerRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		projectRepo:     NewProjectRepo(db),
		requirementRepo: NewRequirementRepo(db),
		answerRepo:      NewAnswerRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) RequirementRepo() *RequirementRepo {
	return d.requirementRepo
}

func (d Database) AnswerRepo() *AnswerRepo {
	return d.answerRepo
}

// DB returns the underlying connection.
func (d Database) DB() *gorm.DB {
	return d.db
}

// Transaction runs fn with repositories bound to a single database
// transaction. The transaction is committed when fn returns nil and rolled
// back otherwise.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Migrate creates or updates every table.
func (d Database) Migrate() error {
	return models.Migrate(d.db)
}

// Ping checks that the database answers queries.
func (d Database) Ping(ctx context.Context) error {
	var result int
	return d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error
}
