// cosmos-crm/models/mission.go

package models

// Mission joins a scientist to a planet. Each mission belongs to exactly
// one of each.
type Mission struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	ScientistID uint   `json:"scientist_id" gorm:"not null"`
	PlanetID    uint   `json:"planet_id" gorm:"not null"`

	Scientist *Scientist `json:"scientist,omitempty" gorm:"foreignKey:ScientistID"`
	Planet    *Planet    `json:"planet,omitempty" gorm:"foreignKey:PlanetID"`
}

// Validate checks the field rules for a candidate mission. The foreign keys
// must be set; whether they resolve to live rows is checked by the handler
// against the store.
func (m *Mission) Validate() error {
	var errs []string
	if m.Name == "" {
		errs = append(errs, "Name cannot be empty.")
	}
	if m.ScientistID == 0 {
		errs = append(errs, "Scientist ID cannot be empty.")
	}
	if m.PlanetID == 0 {
		errs = append(errs, "Planet ID cannot be empty.")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
