package model

import "github.com/m-mizutani/goerr/v2"

// Messages is the user-facing copy of the employee form
type Messages struct {
	Title             string `yaml:"title"`
	NamePlaceholder   string `yaml:"name_placeholder"`
	EmailPlaceholder  string `yaml:"email_placeholder"`
	DepartmentLabel   string `yaml:"department_label"`
	CancelButton      string `yaml:"cancel_button"`
	SaveButton        string `yaml:"save_button"`
	RequiredField     string `yaml:"required_field"`
	InvalidEmail      string `yaml:"invalid_email"`
	DepartmentMissing string `yaml:"department_missing"`
	SaveSucceeded     string `yaml:"save_succeeded"`
	SaveFailed        string `yaml:"save_failed"`
	ListTitle         string `yaml:"list_title"`
	NewEmployeeLink   string `yaml:"new_employee_link"`
}

// DefaultMessages returns the built-in pt-BR copy
func DefaultMessages() *Messages {
	return &Messages{
		Title:             "INFORME OS DADOS",
		NamePlaceholder:   "Nome do funcionário",
		EmailPlaceholder:  "Email do funcionário",
		DepartmentLabel:   "Departamentos",
		CancelButton:      "CANCELAR",
		SaveButton:        "SALVAR",
		RequiredField:     "Campo obrigatório",
		InvalidEmail:      "Email inválido",
		DepartmentMissing: "Campo Obrigatório",
		SaveSucceeded:     "Cadastrado com sucesso",
		SaveFailed:        "Erro ao cadastrar funcionário",
		ListTitle:         "Funcionários",
		NewEmployeeLink:   "ADICIONAR",
	}
}

// Merge returns a copy of m where every non-empty field of override wins
func (m *Messages) Merge(override *Messages) *Messages {
	merged := *m
	if override == nil {
		return &merged
	}

	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&merged.Title, override.Title)
	pick(&merged.NamePlaceholder, override.NamePlaceholder)
	pick(&merged.EmailPlaceholder, override.EmailPlaceholder)
	pick(&merged.DepartmentLabel, override.DepartmentLabel)
	pick(&merged.CancelButton, override.CancelButton)
	pick(&merged.SaveButton, override.SaveButton)
	pick(&merged.RequiredField, override.RequiredField)
	pick(&merged.InvalidEmail, override.InvalidEmail)
	pick(&merged.DepartmentMissing, override.DepartmentMissing)
	pick(&merged.SaveSucceeded, override.SaveSucceeded)
	pick(&merged.SaveFailed, override.SaveFailed)
	pick(&merged.ListTitle, override.ListTitle)
	pick(&merged.NewEmployeeLink, override.NewEmployeeLink)
	return &merged
}

// Validate checks that every message used by validation and notifications is set
func (m *Messages) Validate() error {
	required := map[string]string{
		"required_field":     m.RequiredField,
		"invalid_email":      m.InvalidEmail,
		"department_missing": m.DepartmentMissing,
		"save_succeeded":     m.SaveSucceeded,
		"save_failed":        m.SaveFailed,
	}
	for key, value := range required {
		if value == "" {
			return goerr.New("message is required", goerr.V("key", key))
		}
	}
	return nil
}
