package domain

import "time"

// CNHType is the driver license category. Only categories A and AB allow the
// courier to rent a motorcycle.
type CNHType string

const (
	CNHTypeA  CNHType = "A"
	CNHTypeB  CNHType = "B"
	CNHTypeAB CNHType = "AB"
)

// Valid reports whether the category is one of A, B or AB.
func (t CNHType) Valid() bool {
	switch t {
	case CNHTypeA, CNHTypeB, CNHTypeAB:
		return true
	}
	return false
}

// AllowsMotorcycle reports whether the license category permits motorcycle
// rental. Category B alone does not.
func (t CNHType) AllowsMotorcycle() bool {
	return t == CNHTypeA || t == CNHTypeAB
}

type Courier struct {
	ID          string    `json:"id"`
	CNPJ        string    `json:"cnpj"`
	Name        string    `json:"name"`
	BirthDate   time.Time `json:"birth_date"`
	CNHNumber   string    `json:"cnh_number"`
	CNHType     CNHType   `json:"cnh_type"`
	CNHImageURL *string   `json:"cnh_image_url,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}
