package models

import (
	"github.com/m04kA/HBT-OccupancyService/internal/domain"
)

// RoomResponse ответ с данными палаты и её занятостью
type RoomResponse struct {
	ID            int64  `json:"id"`
	HospitalID    int64  `json:"hospitalId"`
	RoomNumber    string `json:"roomNumber"`
	TotalBeds     int    `json:"totalBeds"`
	OccupiedBeds  int    `json:"occupiedBeds"`
	AvailableBeds int    `json:"availableBeds"`
}

// RoomListResponse ответ со списком палат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// HospitalOccupancyResponse ответ с агрегированной занятостью госпиталя
type HospitalOccupancyResponse struct {
	HospitalID    int64 `json:"hospitalId"`
	TotalBeds     int   `json:"totalBeds"`
	OccupiedBeds  int   `json:"occupiedBeds"`
	AvailableBeds int   `json:"availableBeds"`
}

// FromDomainRoom собирает DTO из палаты и её живой занятости
func FromDomainRoom(room *domain.Room, occupiedBeds int) *RoomResponse {
	if room == nil {
		return nil
	}

	snapshot := domain.RoomOccupancy{
		RoomID:       room.ID,
		RoomNumber:   room.RoomNumber,
		TotalBeds:    room.TotalBeds,
		OccupiedBeds: occupiedBeds,
	}

	return &RoomResponse{
		ID:            room.ID,
		HospitalID:    room.HospitalID,
		RoomNumber:    room.RoomNumber,
		TotalBeds:     snapshot.TotalBeds,
		OccupiedBeds:  snapshot.OccupiedBeds,
		AvailableBeds: snapshot.AvailableBeds(),
	}
}

// FromDomainHospital собирает DTO агрегированной занятости госпиталя
func FromDomainHospital(h *domain.Hospital) *HospitalOccupancyResponse {
	if h == nil {
		return nil
	}

	snapshot := domain.HospitalOccupancy{
		HospitalID:   h.ID,
		TotalBeds:    h.TotalBeds,
		OccupiedBeds: h.OccupiedBeds,
	}

	return &HospitalOccupancyResponse{
		HospitalID:    snapshot.HospitalID,
		TotalBeds:     snapshot.TotalBeds,
		OccupiedBeds:  snapshot.OccupiedBeds,
		AvailableBeds: snapshot.AvailableBeds(),
	}
}
