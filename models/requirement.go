package models

import "fmt"

// Requirement is one clause of the ISO 9001:2015 questionnaire. Rows are
// seeded once and never modified by the application.
type Requirement struct {
	ID       uint     `json:"id" yaml:"-" gorm:"primaryKey"`
	Chapter  int      `json:"capitulo" yaml:"capitulo" gorm:"column:capitulo;not null;index:idx_requisito_capitulo"`
	Numeral  string   `json:"numeral" yaml:"numeral" gorm:"column:numeral;type:varchar(20);not null"`
	Question string   `json:"pregunta_texto" yaml:"pregunta_texto" gorm:"column:pregunta_texto;type:text;not null"`
	HelpText *string  `json:"descripcion_ayuda" yaml:"descripcion_ayuda" gorm:"column:descripcion_ayuda;type:text"`
	Answers  []Answer `json:"-" yaml:"-" gorm:"foreignKey:RequirementID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Requirement) TableName() string { return "requisitos_iso9001" }

const (
	FirstChapter = 4
	LastChapter  = 10
)

var chapterNames = map[int]string{
	4:  "Contexto de la Organización",
	5:  "Liderazgo",
	6:  "Planificación",
	7:  "Apoyo",
	8:  "Operación",
	9:  "Evaluación del Desempeño",
	10: "Mejora",
}

// ChapterName returns the display name of an ISO 9001 chapter.
func ChapterName(chapter int) string {
	if name, ok := chapterNames[chapter]; ok {
		return name
	}
	return fmt.Sprintf("Capítulo %d", chapter)
}
