package assign_patient

import (
	assignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/assign_patient"
)

// AssignPatientRequest HTTP request model
type AssignPatientRequest struct {
	PatientID int64 `json:"patientId"`
	RoomID    int64 `json:"roomId"`
}

// RoomOccupancyResponse HTTP response model
type RoomOccupancyResponse struct {
	RoomID        int64  `json:"roomId"`
	RoomNumber    string `json:"roomNumber"`
	TotalBeds     int    `json:"totalBeds"`
	OccupiedBeds  int    `json:"occupiedBeds"`
	AvailableBeds int    `json:"availableBeds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AssignPatientRequest) ToUseCaseRequest() *assignPatient.Request {
	return &assignPatient.Request{
		PatientID: r.PatientID,
		RoomID:    r.RoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignPatient.Response) *RoomOccupancyResponse {
	return &RoomOccupancyResponse{
		RoomID:        resp.RoomID,
		RoomNumber:    resp.RoomNumber,
		TotalBeds:     resp.TotalBeds,
		OccupiedBeds:  resp.OccupiedBeds,
		AvailableBeds: resp.AvailableBeds,
	}
}
