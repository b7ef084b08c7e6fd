package discharge_patient

import (
	dischargePatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/discharge_patient"
)

// DischargePatientResponse HTTP response model
type DischargePatientResponse struct {
	PatientID int64  `json:"patientId"`
	ExitDate  string `json:"exitDate"`

	RoomID        int64  `json:"roomId"`
	RoomNumber    string `json:"roomNumber"`
	TotalBeds     int    `json:"totalBeds"`
	OccupiedBeds  int    `json:"occupiedBeds"`
	AvailableBeds int    `json:"availableBeds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *dischargePatient.Response) *DischargePatientResponse {
	return &DischargePatientResponse{
		PatientID:     resp.PatientID,
		ExitDate:      resp.ExitDate,
		RoomID:        resp.RoomID,
		RoomNumber:    resp.RoomNumber,
		TotalBeds:     resp.TotalBeds,
		OccupiedBeds:  resp.OccupiedBeds,
		AvailableBeds: resp.AvailableBeds,
	}
}
