package models

import "math"

// ChapterMetric is the compliance summary of one ISO chapter.
type ChapterMetric struct {
	Chapter     int     `json:"capitulo"`
	ChapterName string  `json:"nombre_capitulo"`
	Total       int64   `json:"total_preguntas"`
	Affirmative int64   `json:"respuestas_afirmativas"`
	Percentage  float64 `json:"porcentaje_cumplimiento"`
}

// DiagnosticMetrics is the compliance report for one project.
type DiagnosticMetrics struct {
	ProjectID        uint            `json:"proyecto_id"`
	CompanyName      string          `json:"nombre_empresa"`
	TotalQuestions   int64           `json:"total_preguntas"`
	TotalAffirmative int64           `json:"total_afirmativas"`
	GlobalPercentage float64         `json:"porcentaje_global"`
	Chapters         []ChapterMetric `json:"capitulos"`
}

// ChapterCount is a raw per-chapter aggregate read from storage.
type ChapterCount struct {
	Chapter     int
	Total       int64
	Affirmative int64
}

// Percentage returns part/total as a percentage rounded to two decimals, 0 when total is 0.
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}

// BuildMetrics turns per-chapter counts into a report. Counts are expected
// in ascending chapter order. The global percentage is computed over the
// summed counts, not averaged across chapters.
func BuildMetrics(project *Project, counts []ChapterCount) DiagnosticMetrics {
	m := DiagnosticMetrics{
		ProjectID:   project.ID,
		CompanyName: project.CompanyName,
		Chapters:    make([]ChapterMetric, 0, len(counts)),
	}
	for _, c := range counts {
		m.Chapters = append(m.Chapters, ChapterMetric{
			Chapter:     c.Chapter,
			ChapterName: ChapterName(c.Chapter),
			Total:       c.Total,
			Affirmative: c.Affirmative,
			Percentage:  Percentage(c.Affirmative, c.Total),
		})
		m.TotalQuestions += c.Total
		m.TotalAffirmative += c.Affirmative
	}
	m.GlobalPercentage = Percentage(m.TotalAffirmative, m.TotalQuestions)
	return m
}
