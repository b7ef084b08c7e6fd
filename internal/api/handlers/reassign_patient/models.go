package reassign_patient

import (
	reassignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/reassign_patient"
)

// ReassignPatientRequest HTTP request model
type ReassignPatientRequest struct {
	PatientID int64 `json:"patientId"`
	NewRoomID int64 `json:"newRoomId"`
}

// ReassignPatientResponse HTTP response model
type ReassignPatientResponse struct {
	RoomID        int64  `json:"roomId"`
	RoomNumber    string `json:"roomNumber"`
	TotalBeds     int    `json:"totalBeds"`
	OccupiedBeds  int    `json:"occupiedBeds"`
	AvailableBeds int    `json:"availableBeds"`
	Readmitted    bool   `json:"readmitted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReassignPatientRequest) ToUseCaseRequest() *reassignPatient.Request {
	return &reassignPatient.Request{
		PatientID: r.PatientID,
		NewRoomID: r.NewRoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reassignPatient.Response) *ReassignPatientResponse {
	return &ReassignPatientResponse{
		RoomID:        resp.RoomID,
		RoomNumber:    resp.RoomNumber,
		TotalBeds:     resp.TotalBeds,
		OccupiedBeds:  resp.OccupiedBeds,
		AvailableBeds: resp.AvailableBeds,
		Readmitted:    resp.Readmitted,
	}
}
