package models

import "time"

// Answer records whether a project complies with one catalog requirement.
// There is at most one row per (project, requirement).
type Answer struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	ProjectID     uint         `json:"proyecto_id" gorm:"column:proyecto_id;not null;index:idx_respuesta_proyecto;uniqueIndex:uq_proyecto_requisito"`
	RequirementID uint         `json:"requisito_id" gorm:"column:requisito_id;not null;uniqueIndex:uq_proyecto_requisito"`
	Compliant     bool         `json:"cumple" gorm:"column:cumple;not null;default:false"`
	Evidence      *string      `json:"evidencia" gorm:"column:evidencia;type:text"`
	AnsweredAt    time.Time    `json:"fecha_respuesta" gorm:"column:fecha_respuesta;not null"`
	Requirement   *Requirement `json:"-" gorm:"foreignKey:RequirementID"`
}

func (Answer) TableName() string { return "respuestas_diagnostico" }

// AnswerItem is one entry of a diagnostic submission.
type AnswerItem struct {
	RequirementID uint    `json:"requisito_id"`
	Compliant     bool    `json:"cumple"`
	Evidence      *string `json:"evidencia"`
}

// AnswerSubmission is the body of POST /diagnostico/respuestas/.
type AnswerSubmission struct {
	ProjectID uint         `json:"proyecto_id"`
	Answers   []AnswerItem `json:"respuestas"`
}

// Dedupe collapses repeated requirement ids. The last occurrence provides the
// values, the first occurrence keeps the position.
func Dedupe(items []AnswerItem) []AnswerItem {
	index := make(map[uint]int, len(items))
	out := make([]AnswerItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.RequirementID]; ok {
			out[i] = item
			continue
		}
		index[item.RequirementID] = len(out)
		out = append(out, item)
	}
	return out
}
