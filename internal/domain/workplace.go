package domain

// Location represents a building or a virtual place (home, travel, absence)
type Location struct {
	ID       int64
	Name     string
	IsOffice bool // office workplaces are exclusively assignable per day
}

// Floor belongs to a location
type Floor struct {
	ID         int64
	LocationID int64
	Name       string
	FloorMap   *string // reference to the floor plan image, never served by this service
}

// FloorInfo is a floor joined with its location
type FloorInfo struct {
	Floor
	LocationName string
	IsOffice     bool
}

// Workplace is a desk on a floor
type Workplace struct {
	ID      int64
	FloorID int64
	Name    string
}

// WorkplaceInfo is a workplace joined with its floor and location
type WorkplaceInfo struct {
	Workplace
	FloorName    string
	LocationID   int64
	LocationName string
	IsOffice     bool
}

// IsExclusive returns true if at most one employee may hold the workplace per day
func (w *WorkplaceInfo) IsExclusive() bool {
	return w.IsOffice
}

// WorkplaceLess orders workplaces by (is_office, name): non-office first
func WorkplaceLess(a, b *WorkplaceInfo) bool {
	if a.IsOffice != b.IsOffice {
		return !a.IsOffice
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

// LocationCapacity is a location with the number of workplaces it holds
type LocationCapacity struct {
	Location
	WorkplaceCount int
}
