package domain

import "time"

// Hospital represents a hospital with a denormalized occupancy counter
// TotalBeds поддерживается adminservice, OccupiedBeds - только этим сервисом
// через атомарные инкремент/декремент
type Hospital struct {
	ID            int64
	Name          string
	ContactNumber string
	Address       string
	City          string
	State         string

	TotalBeds    int
	OccupiedBeds int

	AverageRating float64
	TotalReviews  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HospitalOccupancy represents a point-in-time occupancy snapshot of a hospital
type HospitalOccupancy struct {
	HospitalID   int64
	TotalBeds    int
	OccupiedBeds int
}

// AvailableBeds returns the number of free beds across the hospital
func (o *HospitalOccupancy) AvailableBeds() int {
	free := o.TotalBeds - o.OccupiedBeds
	if free < 0 {
		return 0
	}
	return free
}
