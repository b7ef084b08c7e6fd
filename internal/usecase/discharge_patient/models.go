package discharge_patient

// Request модель запроса на выписку пациента
type Request struct {
	PatientID int64 // ID пациента
}

// Response модель ответа с занятостью освобожденной палаты
type Response struct {
	PatientID int64  // ID пациента
	ExitDate  string // Дата выписки (YYYY-MM-DD)

	// Занятость палаты, которую занимал пациент
	RoomID        int64  // ID освобожденной палаты
	RoomNumber    string // Номер палаты
	TotalBeds     int    // Вместимость палаты
	OccupiedBeds  int    // Занято коек после выписки
	AvailableBeds int    // Свободно коек после выписки
}
