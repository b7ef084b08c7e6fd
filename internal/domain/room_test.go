package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomOccupancy_AvailableBeds(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		occupied int
		want     int
	}{
		{"empty room", 4, 0, 4},
		{"partially occupied", 4, 3, 1},
		{"full room", 4, 4, 0},
		{"overbooked floors at zero", 4, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := RoomOccupancy{TotalBeds: tt.total, OccupiedBeds: tt.occupied}
			assert.Equal(t, tt.want, o.AvailableBeds())
		})
	}
}

func TestHospitalOccupancy_AvailableBeds(t *testing.T) {
	o := HospitalOccupancy{HospitalID: 10, TotalBeds: 120, OccupiedBeds: 75}
	assert.Equal(t, 45, o.AvailableBeds())

	// Рассинхронизированный счётчик не даёт отрицательной доступности
	over := HospitalOccupancy{HospitalID: 10, TotalBeds: 120, OccupiedBeds: 130}
	assert.Equal(t, 0, over.AvailableBeds())
}

func TestRoomOccupancy_IsFull(t *testing.T) {
	assert.False(t, (&RoomOccupancy{TotalBeds: 2, OccupiedBeds: 1}).IsFull())
	assert.True(t, (&RoomOccupancy{TotalBeds: 2, OccupiedBeds: 2}).IsFull())
	assert.True(t, (&RoomOccupancy{TotalBeds: 2, OccupiedBeds: 3}).IsFull())
}
