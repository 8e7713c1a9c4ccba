package models

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int64
		want        float64
	}{
		{3, 4, 75},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0},
		{4, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.part, tt.total); got != tt.want {
			t.Fatalf("Percentage(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestBuildMetricsUsesSummedCounts(t *testing.T) {
	project := &Project{ID: 7, CompanyName: "Acme"}
	counts := []ChapterCount{
		{Chapter: 4, Total: 2, Affirmative: 1},
		{Chapter: 5, Total: 4, Affirmative: 3},
	}

	m := BuildMetrics(project, counts)

	if m.ProjectID != 7 || m.CompanyName != "Acme" {
		t.Fatalf("project fields = %d %q", m.ProjectID, m.CompanyName)
	}
	if m.TotalQuestions != 6 || m.TotalAffirmative != 4 {
		t.Fatalf("totals = %d/%d, want 4/6", m.TotalAffirmative, m.TotalQuestions)
	}
	if m.GlobalPercentage != 66.67 {
		t.Fatalf("GlobalPercentage = %v, want 66.67", m.GlobalPercentage)
	}
	if len(m.Chapters) != 2 {
		t.Fatalf("len(Chapters) = %d, want 2", len(m.Chapters))
	}
	if m.Chapters[0].Percentage != 50 || m.Chapters[1].Percentage != 75 {
		t.Fatalf("chapter percentages = %v, %v", m.Chapters[0].Percentage, m.Chapters[1].Percentage)
	}
	if m.Chapters[1].ChapterName != "Liderazgo" {
		t.Fatalf("chapter 5 name = %q", m.Chapters[1].ChapterName)
	}
}

func TestBuildMetricsEmpty(t *testing.T) {
	m := BuildMetrics(&Project{ID: 1}, nil)
	if m.GlobalPercentage != 0 || m.TotalQuestions != 0 {
		t.Fatalf("empty metrics = %+v", m)
	}
	if m.Chapters == nil {
		t.Fatal("Chapters is nil, want empty slice")
	}
}

func TestChapterName(t *testing.T) {
	if got := ChapterName(8); got != "Operación" {
		t.Fatalf("ChapterName(8) = %q", got)
	}
	if got := ChapterName(11); got != "Capítulo 11" {
		t.Fatalf("ChapterName(11) = %q", got)
	}
}
