package reassign_patient

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.NewRoomID <= 0 {
		return fmt.Errorf("%w: newRoomID must be positive", ErrInvalidInput)
	}

	return nil
}
