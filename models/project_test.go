package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jjmunozz/StrategicTeam-SGC/errs"
)

func TestNewProject(t *testing.T) {
	sector := "Manufactura"
	p, err := NewProject(ProjectInput{CompanyName: "Acme", Sector: &sector})
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	if p.State != StateActive {
		t.Fatalf("State = %q, want ACTIVO", p.State)
	}
	if p.Sector == nil || *p.Sector != sector {
		t.Fatalf("Sector = %v", p.Sector)
	}
}

func TestProjectInputValidate(t *testing.T) {
	long := strings.Repeat("x", 101)
	tests := []struct {
		name  string
		in    ProjectInput
		check func(error) bool
	}{
		{"blank name", ProjectInput{CompanyName: "  "}, errs.IsMissingRequiredFieldError},
		{"short name", ProjectInput{CompanyName: "A"}, errs.IsInvalidFieldError},
		{"long name", ProjectInput{CompanyName: strings.Repeat("a", 256)}, errs.IsInvalidFieldError},
		{"long sector", ProjectInput{CompanyName: "Acme", Sector: &long}, errs.IsInvalidFieldError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if err == nil || !tt.check(err) {
				t.Fatalf("Validate() = %v", err)
			}
			if errs.StatusCode(err) != 422 {
				t.Fatalf("status = %d, want 422", errs.StatusCode(err))
			}
		})
	}

	// two multi-byte runes are a valid name
	if err := (ProjectInput{CompanyName: "Ñú"}).Validate(); err != nil {
		t.Fatalf("Validate(Ñú) = %v", err)
	}
}

func TestProjectUpdatePartial(t *testing.T) {
	sector := "Servicios"
	contact := "Ana"
	p := &Project{CompanyName: "Acme", Sector: &sector, ContactName: &contact, State: StateActive}

	var u ProjectUpdate
	if err := json.Unmarshal([]byte(`{"nombre_empresa":"Acme SA","sector":null,"estado":"PAUSADO"}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	u.ApplyTo(p)

	if p.CompanyName != "Acme SA" {
		t.Fatalf("CompanyName = %q", p.CompanyName)
	}
	if p.Sector != nil {
		t.Fatalf("Sector = %q, want nil", *p.Sector)
	}
	if p.ContactName == nil || *p.ContactName != "Ana" {
		t.Fatal("ContactName changed but was absent from the update")
	}
	if p.State != StatePaused {
		t.Fatalf("State = %q, want PAUSADO", p.State)
	}
}

func TestProjectUpdateValidate(t *testing.T) {
	for _, body := range []string{
		`{"nombre_empresa":null}`,
		`{"nombre_empresa":"A"}`,
		`{"estado":"CERRADO"}`,
		`{"estado":null}`,
	} {
		var u ProjectUpdate
		if err := json.Unmarshal([]byte(body), &u); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if err := u.Validate(); !errs.IsInvalidFieldError(err) {
			t.Fatalf("Validate(%s) = %v, want invalid field", body, err)
		}
	}
}

func TestOptional(t *testing.T) {
	var v struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
		C Optional[string] `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"x","b":null}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !v.A.Set || v.A.Value == nil || *v.A.Value != "x" {
		t.Fatalf("A = %+v", v.A)
	}
	if !v.B.Set || v.B.Value != nil {
		t.Fatalf("B = %+v", v.B)
	}
	if v.C.Set {
		t.Fatalf("C = %+v, want unset", v.C)
	}
	if s := Some(3); !s.Set || *s.Value != 3 {
		t.Fatalf("Some(3) = %+v", s)
	}
}
