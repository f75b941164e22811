// cosmos-crm/models/planet.go

package models

// Planet represents the planet model in the database. Planets are read-only
// through the API; they are seeded out of band.
type Planet struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`

	Missions []Mission `json:"missions,omitempty" gorm:"foreignKey:PlanetID"`
}

// Scientists returns the scientists that have visited this planet, derived
// by walking the loaded mission set.
func (p *Planet) Scientists() []Scientist {
	scientists := make([]Scientist, 0, len(p.Missions))
	for _, m := range p.Missions {
		if m.Scientist != nil {
			scientists = append(scientists, *m.Scientist)
		}
	}
	return scientists
}
