// cosmos-crm/models/scientist.go

package models

// Scientist represents the scientist model in the database.
type Scientist struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	FieldOfStudy string `json:"field_of_study" gorm:"not null"`

	Missions []Mission `json:"missions,omitempty" gorm:"foreignKey:ScientistID"`
}

// Validate checks the field rules for a candidate scientist. Every handler
// calls it before an insert or update reaches the store.
func (s *Scientist) Validate() error {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "Name cannot be empty.")
	}
	if s.FieldOfStudy == "" {
		errs = append(errs, "Field of study cannot be empty.")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Planets returns the planets this scientist has visited, derived by
// walking the loaded mission set. Computed at read time, never stored.
func (s *Scientist) Planets() []Planet {
	planets := make([]Planet, 0, len(s.Missions))
	for _, m := range s.Missions {
		if m.Planet != nil {
			planets = append(planets, *m.Planet)
		}
	}
	return planets
}
