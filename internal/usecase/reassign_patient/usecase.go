package reassign_patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	patientRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/patient"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
)

// UseCase use case перевода пациента в другую палату
//
// Два различных пути с одинаковой дисциплиной блокировки палаты назначения:
//   - пациент ADMITTED: чистый transfer, меняется только палата,
//     счётчик госпиталя не трогаем - койка уже была учтена
//   - пациент DISCHARGED: повторное поступление, статус меняется на ADMITTED
//     и счётчик инкрементируется так же, как при первичном размещении
//
// Смешивание этих путей приводит к двойному учёту или потере коек
type UseCase struct {
	patientRepo  PatientRepository
	roomRepo     RoomRepository
	hospitalRepo HospitalRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	patientRepo PatientRepository,
	roomRepo RoomRepository,
	hospitalRepo HospitalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		patientRepo:  patientRepo,
		roomRepo:     roomRepo,
		hospitalRepo: hospitalRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет перевод пациента в палату назначения
func (uc *UseCase) Execute(ctx context.Context, req *Request, scope domain.HospitalScope) (*Response, error) {
	uc.logger.Info("ReassignPatient: patient=%d, newRoom=%d, hospital=%d",
		req.PatientID, req.NewRoomID, scope.HospitalID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReassignPatient: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем палату назначения
		// Блокируется всегда ровно одна палата за операцию, поэтому
		// циклов в порядке блокировок быть не может
		newRoom, err := uc.roomRepo.GetByIDForUpdate(txCtx, req.NewRoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("ReassignPatient: room id=%d not found", req.NewRoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ReassignPatient: failed to lock room id=%d: %v", req.NewRoomID, err)
			return fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
		}

		if !scope.Covers(newRoom.HospitalID) {
			uc.logger.Warn("ReassignPatient: room id=%d belongs to hospital=%d, caller scope=%d",
				req.NewRoomID, newRoom.HospitalID, scope.HospitalID)
			return ErrScopeViolation
		}

		// 2. Получаем пациента
		patient, err := uc.patientRepo.GetByID(txCtx, req.PatientID)
		if err != nil {
			if errors.Is(err, patientRepo.ErrPatientNotFound) {
				uc.logger.Warn("ReassignPatient: patient id=%d not found", req.PatientID)
				return ErrPatientNotFound
			}
			uc.logger.Error("ReassignPatient: failed to get patient id=%d: %v", req.PatientID, err)
			return fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
		}

		if !scope.Covers(patient.HospitalID) {
			uc.logger.Warn("ReassignPatient: patient id=%d belongs to hospital=%d, caller scope=%d",
				req.PatientID, patient.HospitalID, scope.HospitalID)
			return ErrScopeViolation
		}

		// 3. Перевод в текущую палату отклоняется
		if patient.InRoom(req.NewRoomID) {
			uc.logger.Warn("ReassignPatient: patient id=%d is already in room id=%d",
				req.PatientID, req.NewRoomID)
			return ErrSameRoom
		}

		// 4. Проверяем вместимость палаты назначения под блокировкой
		occupied, err := uc.patientRepo.CountAdmittedByRoom(txCtx, req.NewRoomID)
		if err != nil {
			uc.logger.Error("ReassignPatient: failed to count occupancy for room id=%d: %v",
				req.NewRoomID, err)
			return fmt.Errorf("%w: failed to count occupancy: %v", ErrInternal, err)
		}

		if occupied >= newRoom.TotalBeds {
			uc.logger.Warn("ReassignPatient: room id=%d is full, %d/%d beds taken",
				req.NewRoomID, occupied, newRoom.TotalBeds)
			return ErrRoomFull
		}

		readmitted := false

		if patient.IsAdmitted() {
			// 5a. Чистый transfer: койка уже учтена в счётчике госпиталя,
			// меняем только палату
			if err := uc.patientRepo.SetRoom(txCtx, req.PatientID, req.NewRoomID); err != nil {
				uc.logger.Error("ReassignPatient: failed to move patient id=%d: %v", req.PatientID, err)
				return fmt.Errorf("%w: failed to move patient: %v", ErrInternal, err)
			}
		} else {
			// 5b. Повторное поступление выписанного пациента:
			// статус ADMITTED, сброс даты выписки и инкремент счётчика -
			// ровно как при первичном размещении
			readmitted = true

			if err := uc.patientRepo.Admit(txCtx, req.PatientID, req.NewRoomID); err != nil {
				uc.logger.Error("ReassignPatient: failed to readmit patient id=%d: %v", req.PatientID, err)
				return fmt.Errorf("%w: failed to readmit patient: %v", ErrInternal, err)
			}

			if err := uc.hospitalRepo.IncrementOccupiedBeds(txCtx, scope.HospitalID); err != nil {
				uc.logger.Error("ReassignPatient: failed to increment hospital occupancy id=%d: %v",
					scope.HospitalID, err)
				return fmt.Errorf("%w: failed to increment hospital occupancy: %v", ErrInternal, err)
			}
		}

		snapshot := domain.RoomOccupancy{
			RoomID:       newRoom.ID,
			RoomNumber:   newRoom.RoomNumber,
			TotalBeds:    newRoom.TotalBeds,
			OccupiedBeds: occupied + 1,
		}
		result = &Response{
			RoomID:        snapshot.RoomID,
			RoomNumber:    snapshot.RoomNumber,
			TotalBeds:     snapshot.TotalBeds,
			OccupiedBeds:  snapshot.OccupiedBeds,
			AvailableBeds: snapshot.AvailableBeds(),
			Readmitted:    readmitted,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Readmitted {
		uc.logger.Info("ReassignPatient: patient id=%d readmitted into room id=%d, occupancy %d/%d",
			req.PatientID, req.NewRoomID, result.OccupiedBeds, result.TotalBeds)
	} else {
		uc.logger.Info("ReassignPatient: patient id=%d transferred to room id=%d, occupancy %d/%d",
			req.PatientID, req.NewRoomID, result.OccupiedBeds, result.TotalBeds)
	}

	return result, nil
}
