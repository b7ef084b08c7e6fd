package domain

import "time"

// Room represents a hospital room with a fixed bed capacity
// Вместимость задается adminservice и read-only для этого сервиса
type Room struct {
	ID         int64
	HospitalID int64
	RoomNumber string
	TotalBeds  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomOccupancy represents a point-in-time occupancy snapshot of a room
type RoomOccupancy struct {
	RoomID       int64
	RoomNumber   string
	TotalBeds    int
	OccupiedBeds int
}

// AvailableBeds returns the number of free beds in the room
func (o *RoomOccupancy) AvailableBeds() int {
	free := o.TotalBeds - o.OccupiedBeds
	if free < 0 {
		return 0
	}
	return free
}

// IsFull returns true if the room has no free bed
func (o *RoomOccupancy) IsFull() bool {
	return o.OccupiedBeds >= o.TotalBeds
}
