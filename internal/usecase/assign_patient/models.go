package assign_patient

// Request модель запроса на размещение пациента в палате
type Request struct {
	PatientID int64 // ID пациента
	RoomID    int64 // ID палаты
}

// Response модель ответа с обновленной занятостью палаты
type Response struct {
	RoomID        int64  // ID палаты
	RoomNumber    string // Номер палаты
	TotalBeds     int    // Вместимость палаты
	OccupiedBeds  int    // Занято коек после размещения
	AvailableBeds int    // Свободно коек после размещения
}
