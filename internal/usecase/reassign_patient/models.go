package reassign_patient

// Request модель запроса на перевод пациента в другую палату
type Request struct {
	PatientID int64 // ID пациента
	NewRoomID int64 // ID палаты назначения
}

// Response модель ответа с обновленной занятостью палаты назначения
type Response struct {
	RoomID        int64  // ID палаты назначения
	RoomNumber    string // Номер палаты
	TotalBeds     int    // Вместимость палаты
	OccupiedBeds  int    // Занято коек после перевода
	AvailableBeds int    // Свободно коек после перевода
	Readmitted    bool   // true, если перевод был повторным поступлением выписанного пациента
}
