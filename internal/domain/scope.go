package domain

// Роли вызывающих, которые возвращает UserService
const (
	RoleReceptionist = "RECEPTIONIST"
	RoleAdmin        = "ADMIN"
)

// HospitalScope scope аутентифицированного вызывающего
// Передается явно в каждую операцию аллокатора; все операции за пределами
// своего госпиталя отклоняются
type HospitalScope struct {
	HospitalID     int64
	ReceptionistID int64
	Role           string
}

// Covers returns true if the scope authorizes operations on the given hospital
func (s HospitalScope) Covers(hospitalID int64) bool {
	return s.HospitalID == hospitalID
}
