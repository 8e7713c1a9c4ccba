package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jjmunozz/StrategicTeam-SGC/errs"
)

// ProjectState is the lifecycle state of a diagnostic project.
type ProjectState string

const (
	StateActive     ProjectState = "ACTIVO"
	StateDiagnosing ProjectState = "EN_DIAGNOSTICO"
	StateCompleted  ProjectState = "COMPLETADO"
	StatePaused     ProjectState = "PAUSADO"
)

func (s ProjectState) Valid() bool {
	switch s {
	case StateActive, StateDiagnosing, StateCompleted, StatePaused:
		return true
	}
	return false
}

// Project is a client organization whose quality management system is being diagnosed
type Project struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	CompanyName  string       `json:"nombre_empresa" gorm:"column:nombre_empresa;type:varchar(255);not null"`
	Sector       *string      `json:"sector" gorm:"column:sector;type:varchar(100)"`
	ContactName  *string      `json:"contacto_nombre" gorm:"column:contacto_nombre;type:varchar(150)"`
	ContactEmail *string      `json:"contacto_email" gorm:"column:contacto_email;type:varchar(150)"`
	State        ProjectState `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:ACTIVO"`
	CreatedAt    time.Time    `json:"fecha_creacion" gorm:"column:fecha_creacion;not null"`
	UpdatedAt    time.Time    `json:"fecha_actualizacion" gorm:"column:fecha_actualizacion;not null"`
	Answers      []Answer     `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string { return "proyectos_sgc" }

const (
	companyNameMin = 2
	companyNameMax = 255
	sectorMax      = 100
	contactMax     = 150
)

// ProjectInput is the payload accepted when creating a project.
type ProjectInput struct {
	CompanyName  string  `json:"nombre_empresa"`
	Sector       *string `json:"sector"`
	ContactName  *string `json:"contacto_nombre"`
	ContactEmail *string `json:"contacto_email"`
}

func (in ProjectInput) Validate() error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return errs.NewMissingRequiredFieldError("nombre_empresa")
	}
	if err := validateCompanyName(in.CompanyName); err != nil {
		return err
	}
	return validateOptionalFields(in.Sector, in.ContactName, in.ContactEmail)
}

// NewProject builds an ACTIVO project from a validated input.
func NewProject(in ProjectInput) (*Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Project{
		CompanyName:  in.CompanyName,
		Sector:       in.Sector,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		State:        StateActive,
	}, nil
}

// ProjectUpdate carries a partial update; only fields present in the payload are applied.
type ProjectUpdate struct {
	CompanyName  Optional[string]       `json:"nombre_empresa"`
	Sector       Optional[string]       `json:"sector"`
	ContactName  Optional[string]       `json:"contacto_nombre"`
	ContactEmail Optional[string]       `json:"contacto_email"`
	State        Optional[ProjectState] `json:"estado"`
}

func (u ProjectUpdate) Validate() error {
	if u.CompanyName.Set {
		if u.CompanyName.Value == nil {
			return errs.NewValidationError("nombre_empresa", "no puede ser nulo")
		}
		if err := validateCompanyName(*u.CompanyName.Value); err != nil {
			return err
		}
	}
	if err := validateOptionalFields(u.Sector.Value, u.ContactName.Value, u.ContactEmail.Value); err != nil {
		return err
	}
	if u.State.Set {
		if u.State.Value == nil || !u.State.Value.Valid() {
			return errs.NewValidationError("estado", "debe ser ACTIVO, EN_DIAGNOSTICO, COMPLETADO o PAUSADO")
		}
	}
	return nil
}

// ApplyTo copies the supplied fields onto p. Call Validate first.
func (u ProjectUpdate) ApplyTo(p *Project) {
	if u.CompanyName.Set && u.CompanyName.Value != nil {
		p.CompanyName = *u.CompanyName.Value
	}
	if u.Sector.Set {
		p.Sector = u.Sector.Value
	}
	if u.ContactName.Set {
		p.ContactName = u.ContactName.Value
	}
	if u.ContactEmail.Set {
		p.ContactEmail = u.ContactEmail.Value
	}
	if u.State.Set && u.State.Value != nil {
		p.State = *u.State.Value
	}
}

func validateCompanyName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < companyNameMin || n > companyNameMax {
		return errs.NewValidationError("nombre_empresa", "debe tener entre 2 y 255 caracteres")
	}
	return nil
}

func validateOptionalFields(sector, contactName, contactEmail *string) error {
	if sector != nil && utf8.RuneCountInString(*sector) > sectorMax {
		return errs.NewValidationError("sector", "máximo 100 caracteres")
	}
	if contactName != nil && utf8.RuneCountInString(*contactName) > contactMax {
		return errs.NewValidationError("contacto_nombre", "máximo 150 caracteres")
	}
	if contactEmail != nil && utf8.RuneCountInString(*contactEmail) > contactMax {
		return errs.NewValidationError("contacto_email", "máximo 150 caracteres")
	}
	return nil
}
