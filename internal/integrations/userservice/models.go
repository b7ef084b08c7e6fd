package userservice

// Session данные аутентифицированной сессии из UserService
type Session struct {
	ReceptionistID int64  `json:"receptionistId"`
	HospitalID     int64  `json:"hospitalId"`
	Username       string `json:"username"`
	Role           string `json:"role"` // RECEPTIONIST или ADMIN
	Valid          bool   `json:"valid"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
