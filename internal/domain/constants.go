package domain

// Business validation constants
const (
	MinAge = 0
	MaxAge = 150

	MaxNameLength          = 100
	MaxGenderLength        = 20
	MaxContactNumberLength = 20
	MaxAddressLength       = 500
	MaxSymptomsLength      = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PatientStatuses список допустимых статусов пациента
var PatientStatuses = []PatientStatus{
	StatusAdmitted,
	StatusDischarged,
}
