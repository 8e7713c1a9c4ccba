package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"github.com/jjmunozz/StrategicTeam-SGC/testutil"
)

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T) (testServer, []*models.Requirement) {
	t.Helper()
	db := testutil.DB(t)
	router := newRouter(db,
		withConfig(map[string]string{
			"APP_NAME":         "SGC test",
			"APP_VERSION":      "9.9.9",
			"ACCEPTED_ORIGINS": "http://localhost:5173",
		}),
		withStartupTime(time.Now()),
	)
	return testServer{t: t, router: router}, testutil.Requirements(t, db)
}

func (s testServer) do(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %T: %v (body %s)", v, err, rec.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")
	expectStatus(t, rec, http.StatusOK)

	health := decode[HealthResponse](t, rec)
	if health.Status != "ok" || health.App != "SGC test" || health.Version != "9.9.9" {
		t.Fatalf("health = %+v", health)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestProjectLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	rec := s.do(http.MethodPost, "/proyectos/", `{"nombre_empresa":"Acme SAS","sector":"Manufactura"}`)
	expectStatus(t, rec, http.StatusCreated)
	created := decode[models.Project](t, rec)
	if created.ID == 0 || created.State != models.StateActive {
		t.Fatalf("created = %+v", created)
	}

	path := fmt.Sprintf("/proyectos/%d", created.ID)

	rec = s.do(http.MethodGet, path, "")
	expectStatus(t, rec, http.StatusOK)

	rec = s.do(http.MethodPut, path, `{"contacto_nombre":"Ana Pérez","estado":"PAUSADO"}`)
	expectStatus(t, rec, http.StatusOK)
	updated := decode[models.Project](t, rec)
	if updated.CompanyName != "Acme SAS" || updated.State != models.StatePaused {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.ContactName == nil || *updated.ContactName != "Ana Pérez" {
		t.Fatalf("contacto_nombre = %v", updated.ContactName)
	}

	rec = s.do(http.MethodGet, "/proyectos", "")
	expectStatus(t, rec, http.StatusOK)
	if list := decode[[]models.Project](t, rec); len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}

	rec = s.do(http.MethodDelete, path, "")
	expectStatus(t, rec, http.StatusNoContent)

	rec = s.do(http.MethodGet, path, "")
	expectStatus(t, rec, http.StatusNotFound)
	if e := decode[ErrorResponse](t, rec); e.Detail != "Proyecto no encontrado" {
		t.Fatalf("detail = %q", e.Detail)
	}

	rec = s.do(http.MethodDelete, path, "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestProjectValidation(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"short name", http.MethodPost, "/proyectos/", `{"nombre_empresa":"A"}`, http.StatusUnprocessableEntity},
		{"missing name", http.MethodPost, "/proyectos/", `{"sector":"x"}`, http.StatusUnprocessableEntity},
		{"malformed json", http.MethodPost, "/proyectos/", `{"nombre_empresa":`, http.StatusUnprocessableEntity},
		{"bad id", http.MethodGet, "/proyectos/abc", "", http.StatusUnprocessableEntity},
		{"bad limit", http.MethodGet, "/proyectos/?limit=5000", "", http.StatusUnprocessableEntity},
		{"negative skip", http.MethodGet, "/proyectos/?skip=-1", "", http.StatusUnprocessableEntity},
		{"update unknown", http.MethodPut, "/proyectos/99", `{"sector":"x"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, s.do(tt.method, tt.path, tt.body), tt.want)
		})
	}
}

func TestDiagnosticFlow(t *testing.T) {
	s, requirements := newTestServer(t)

	rec := s.do(http.MethodGet, "/diagnostico/requisitos", "")
	expectStatus(t, rec, http.StatusOK)
	if list := decode[[]models.Requirement](t, rec); len(list) != len(requirements) {
		t.Fatalf("len(requisitos) = %d, want %d", len(list), len(requirements))
	}

	rec = s.do(http.MethodPost, "/proyectos/", `{"nombre_empresa":"Acme"}`)
	expectStatus(t, rec, http.StatusCreated)
	project := decode[models.Project](t, rec)

	rec = s.do(http.MethodGet, fmt.Sprintf("/diagnostico/%d/metricas", project.ID), "")
	expectStatus(t, rec, http.StatusOK)
	if m := decode[models.DiagnosticMetrics](t, rec); len(m.Chapters) != 7 || m.GlobalPercentage != 0 {
		t.Fatalf("initial metrics = %+v", m)
	}

	body := fmt.Sprintf(`{"proyecto_id":%d,"respuestas":[{"requisito_id":%d,"cumple":true,"evidencia":"Manual"},{"requisito_id":%d,"cumple":false}]}`,
		project.ID, requirements[0].ID, requirements[1].ID)
	rec = s.do(http.MethodPost, "/diagnostico/respuestas/", body)
	expectStatus(t, rec, http.StatusCreated)
	if answers := decode[[]models.Answer](t, rec); len(answers) != 2 {
		t.Fatalf("len(answers) = %d, want 2", len(answers))
	}

	// resubmitting without the trailing slash updates in place
	rec = s.do(http.MethodPost, "/diagnostico/respuestas", body)
	expectStatus(t, rec, http.StatusCreated)

	rec = s.do(http.MethodGet, fmt.Sprintf("/diagnostico/%d/respuestas", project.ID), "")
	expectStatus(t, rec, http.StatusOK)
	if answers := decode[[]models.Answer](t, rec); len(answers) != 2 {
		t.Fatalf("len(answers) = %d, want 2", len(answers))
	}

	rec = s.do(http.MethodGet, fmt.Sprintf("/diagnostico/%d/metricas", project.ID), "")
	expectStatus(t, rec, http.StatusOK)
	m := decode[models.DiagnosticMetrics](t, rec)
	if m.TotalQuestions != 2 || m.TotalAffirmative != 1 || m.GlobalPercentage != 50 {
		t.Fatalf("metrics = %+v", m)
	}

	rec = s.do(http.MethodGet, fmt.Sprintf("/proyectos/%d", project.ID), "")
	if p := decode[models.Project](t, rec); p.State != models.StateDiagnosing {
		t.Fatalf("estado = %q, want EN_DIAGNOSTICO", p.State)
	}
}

func TestSubmitAnswersErrors(t *testing.T) {
	s, requirements := newTestServer(t)
	rec := s.do(http.MethodPost, "/proyectos/", `{"nombre_empresa":"Acme"}`)
	project := decode[models.Project](t, rec)

	rec = s.do(http.MethodPost, "/diagnostico/respuestas/",
		fmt.Sprintf(`{"proyecto_id":%d,"respuestas":[{"requisito_id":%d,"cumple":true},{"requisito_id":999,"cumple":true}]}`, project.ID, requirements[0].ID))
	expectStatus(t, rec, http.StatusUnprocessableEntity)
	e := decode[ErrorResponse](t, rec)
	if len(e.IDs) != 1 || e.IDs[0] != 999 || e.Detail != "Requisitos no encontrados: [999]" {
		t.Fatalf("error = %+v", e)
	}

	rec = s.do(http.MethodGet, fmt.Sprintf("/diagnostico/%d/respuestas", project.ID), "")
	if answers := decode[[]models.Answer](t, rec); len(answers) != 0 {
		t.Fatalf("rejected batch stored %d answers", len(answers))
	}

	rec = s.do(http.MethodPost, "/diagnostico/respuestas/",
		fmt.Sprintf(`{"proyecto_id":404,"respuestas":[{"requisito_id":%d,"cumple":true}]}`, requirements[0].ID))
	expectStatus(t, rec, http.StatusNotFound)

	rec = s.do(http.MethodPost, "/diagnostico/respuestas/", `{"respuestas":[]}`)
	expectStatus(t, rec, http.StatusUnprocessableEntity)
	if e := decode[ErrorResponse](t, rec); e.Field != "proyecto_id" {
		t.Fatalf("field = %q, want proyecto_id", e.Field)
	}

	rec = s.do(http.MethodPost, "/diagnostico/respuestas/", fmt.Sprintf(`{"proyecto_id":%d}`, project.ID))
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = s.do(http.MethodGet, "/diagnostico/404/metricas", "")
	expectStatus(t, rec, http.StatusNotFound)

	rec = s.do(http.MethodGet, "/diagnostico/404/respuestas", "")
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "[]" {
		t.Fatalf("body = %s, want []", rec.Body.String())
	}
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/proyectos/", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("http://localhost:5173")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Access-Control-Allow-Origin = %q (status %d)", got, rec.Code)
	}

	rec = preflight("http://evil.example")
	expectStatus(t, rec, http.StatusForbidden)
}
