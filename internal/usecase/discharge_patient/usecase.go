package discharge_patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	patientRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/patient"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
)

// UseCase use case выписки пациента
//
// Статус DISCHARGED, палата очищается, проставляется дата выписки;
// счётчик госпиталя атомарно декрементируется с нижней границей ноль
// Всё в одной транзакции: мутация пациента и декремент фиксируются вместе
type UseCase struct {
	patientRepo  PatientRepository
	roomRepo     RoomRepository
	hospitalRepo HospitalRepository
	txManager    TransactionManager
	timeProvider TimeProvider
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
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет выписку пациента
func (uc *UseCase) Execute(ctx context.Context, req *Request, scope domain.HospitalScope) (*Response, error) {
	uc.logger.Info("DischargePatient: patient=%d, hospital=%d", req.PatientID, scope.HospitalID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DischargePatient: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем пациента
		patient, err := uc.patientRepo.GetByID(txCtx, req.PatientID)
		if err != nil {
			if errors.Is(err, patientRepo.ErrPatientNotFound) {
				uc.logger.Warn("DischargePatient: patient id=%d not found", req.PatientID)
				return ErrPatientNotFound
			}
			uc.logger.Error("DischargePatient: failed to get patient id=%d: %v", req.PatientID, err)
			return fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
		}

		if !scope.Covers(patient.HospitalID) {
			uc.logger.Warn("DischargePatient: patient id=%d belongs to hospital=%d, caller scope=%d",
				req.PatientID, patient.HospitalID, scope.HospitalID)
			return ErrScopeViolation
		}

		// 2. Повторная выписка - конфликт для вызывающего
		if patient.IsDischarged() {
			uc.logger.Warn("DischargePatient: patient id=%d is already discharged", req.PatientID)
			return ErrAlreadyDischarged
		}

		freedRoomID := int64(0)
		if patient.RoomID != nil {
			freedRoomID = *patient.RoomID
		}

		exitDate := uc.timeProvider.Now()

		// 3. Выписываем пациента
		if err := uc.patientRepo.Discharge(txCtx, req.PatientID, exitDate); err != nil {
			uc.logger.Error("DischargePatient: failed to discharge patient id=%d: %v", req.PatientID, err)
			return fmt.Errorf("%w: failed to discharge patient: %v", ErrInternal, err)
		}

		// 4. Атомарный декремент счётчика госпиталя с нижней границей ноль
		if err := uc.hospitalRepo.DecrementOccupiedBeds(txCtx, scope.HospitalID); err != nil {
			uc.logger.Error("DischargePatient: failed to decrement hospital occupancy id=%d: %v",
				scope.HospitalID, err)
			return fmt.Errorf("%w: failed to decrement hospital occupancy: %v", ErrInternal, err)
		}

		result = &Response{
			PatientID: req.PatientID,
			ExitDate:  exitDate.Format(domain.DateFormat),
		}

		// 5. Снимок занятости освобожденной палаты для ответа
		if freedRoomID != 0 {
			room, err := uc.roomRepo.GetByID(txCtx, freedRoomID)
			if err != nil {
				if errors.Is(err, roomRepo.ErrRoomNotFound) {
					// Палата могла быть удалена adminservice, выписка от этого не ломается
					uc.logger.Warn("DischargePatient: freed room id=%d no longer exists", freedRoomID)
					return nil
				}
				uc.logger.Error("DischargePatient: failed to get freed room id=%d: %v", freedRoomID, err)
				return fmt.Errorf("%w: failed to get freed room: %v", ErrInternal, err)
			}

			occupied, err := uc.patientRepo.CountAdmittedByRoom(txCtx, freedRoomID)
			if err != nil {
				uc.logger.Error("DischargePatient: failed to count occupancy for room id=%d: %v",
					freedRoomID, err)
				return fmt.Errorf("%w: failed to count occupancy: %v", ErrInternal, err)
			}

			snapshot := domain.RoomOccupancy{
				RoomID:       room.ID,
				RoomNumber:   room.RoomNumber,
				TotalBeds:    room.TotalBeds,
				OccupiedBeds: occupied,
			}
			result.RoomID = snapshot.RoomID
			result.RoomNumber = snapshot.RoomNumber
			result.TotalBeds = snapshot.TotalBeds
			result.OccupiedBeds = snapshot.OccupiedBeds
			result.AvailableBeds = snapshot.AvailableBeds()
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DischargePatient: patient id=%d discharged, room id=%d occupancy %d/%d",
		req.PatientID, result.RoomID, result.OccupiedBeds, result.TotalBeds)

	return result, nil
}
