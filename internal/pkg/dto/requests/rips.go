package requests

type GenerateRips struct {
	Version         string `json:"version" validate:"required,rips_version"`
	From            string `json:"from" validate:"required,rips_date"`
	To              string `json:"to" validate:"required,rips_date"`
	RemissionDate   string `json:"remissionDate" validate:"omitempty,rips_date"`
	RemissionNumber int    `json:"remissionNumber" validate:"gte=0"`
	IncludeReport   bool   `json:"includeReport"`
}

// ValidateRips maps and validates a period without writing any file.
type ValidateRips struct {
	Version       string `json:"version" validate:"required,rips_version"`
	From          string `json:"from" validate:"required,rips_date"`
	To            string `json:"to" validate:"required,rips_date"`
	RemissionDate string `json:"remissionDate" validate:"omitempty,rips_date"`
}

// ConvertRips generates a period in Version and writes it converted to
// Target.
type ConvertRips struct {
	Version         string `json:"version" validate:"required,rips_version"`
	Target          string `json:"target" validate:"required,rips_version"`
	From            string `json:"from" validate:"required,rips_date"`
	To              string `json:"to" validate:"required,rips_date"`
	RemissionDate   string `json:"remissionDate" validate:"omitempty,rips_date"`
	RemissionNumber int    `json:"remissionNumber" validate:"gte=0"`
	IncludeReport   bool   `json:"includeReport"`
}
