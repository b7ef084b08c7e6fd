package hospital

import "errors"

var (
	// ErrHospitalNotFound возвращается, когда госпиталь не найден
	ErrHospitalNotFound = errors.New("hospital.repository: hospital not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hospital.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hospital.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hospital.repository: failed to scan row")
)
