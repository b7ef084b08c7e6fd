package assign_patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	patientRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/patient"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
)

// UseCase use case размещения пациента в палате
//
// Протокол: блокировка палаты -> проверка вместимости по живой занятости ->
// запись пациента -> атомарный инкремент счётчика госпиталя
// Всё внутри одной сериализуемой транзакции: при любой ошибке
// состояние всех трёх сущностей остаётся нетронутым
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

// Execute выполняет размещение пациента в палате
func (uc *UseCase) Execute(ctx context.Context, req *Request, scope domain.HospitalScope) (*Response, error) {
	uc.logger.Info("AssignPatient: patient=%d, room=%d, hospital=%d",
		req.PatientID, req.RoomID, scope.HospitalID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignPatient: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем целевую палату (FOR UPDATE)
		// Конкурентные размещения в эту палату дальше этой строки не пройдут,
		// пока транзакция не завершится
		room, err := uc.roomRepo.GetByIDForUpdate(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("AssignPatient: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("AssignPatient: failed to lock room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
		}

		if !scope.Covers(room.HospitalID) {
			uc.logger.Warn("AssignPatient: room id=%d belongs to hospital=%d, caller scope=%d",
				req.RoomID, room.HospitalID, scope.HospitalID)
			return ErrScopeViolation
		}

		// 2. Получаем пациента
		patient, err := uc.patientRepo.GetByID(txCtx, req.PatientID)
		if err != nil {
			if errors.Is(err, patientRepo.ErrPatientNotFound) {
				uc.logger.Warn("AssignPatient: patient id=%d not found", req.PatientID)
				return ErrPatientNotFound
			}
			uc.logger.Error("AssignPatient: failed to get patient id=%d: %v", req.PatientID, err)
			return fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
		}

		if !scope.Covers(patient.HospitalID) {
			uc.logger.Warn("AssignPatient: patient id=%d belongs to hospital=%d, caller scope=%d",
				req.PatientID, patient.HospitalID, scope.HospitalID)
			return ErrScopeViolation
		}

		// 3. Уже размещенный пациент проходит только через reassign
		if patient.IsAdmitted() {
			uc.logger.Warn("AssignPatient: patient id=%d is already admitted", req.PatientID)
			return ErrAlreadyAdmitted
		}

		// 4. Проверяем вместимость по живой занятости под блокировкой
		occupied, err := uc.patientRepo.CountAdmittedByRoom(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("AssignPatient: failed to count occupancy for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to count occupancy: %v", ErrInternal, err)
		}

		if occupied >= room.TotalBeds {
			uc.logger.Warn("AssignPatient: room id=%d is full, %d/%d beds taken",
				req.RoomID, occupied, room.TotalBeds)
			return ErrRoomFull
		}

		// 5. Размещаем пациента: статус ADMITTED, палата, сброс даты выписки
		if err := uc.patientRepo.Admit(txCtx, req.PatientID, req.RoomID); err != nil {
			uc.logger.Error("AssignPatient: failed to admit patient id=%d: %v", req.PatientID, err)
			return fmt.Errorf("%w: failed to admit patient: %v", ErrInternal, err)
		}

		// 6. Атомарный инкремент счётчика занятых коек госпиталя
		if err := uc.hospitalRepo.IncrementOccupiedBeds(txCtx, scope.HospitalID); err != nil {
			uc.logger.Error("AssignPatient: failed to increment hospital occupancy id=%d: %v",
				scope.HospitalID, err)
			return fmt.Errorf("%w: failed to increment hospital occupancy: %v", ErrInternal, err)
		}

		snapshot := domain.RoomOccupancy{
			RoomID:       room.ID,
			RoomNumber:   room.RoomNumber,
			TotalBeds:    room.TotalBeds,
			OccupiedBeds: occupied + 1,
		}
		result = &Response{
			RoomID:        snapshot.RoomID,
			RoomNumber:    snapshot.RoomNumber,
			TotalBeds:     snapshot.TotalBeds,
			OccupiedBeds:  snapshot.OccupiedBeds,
			AvailableBeds: snapshot.AvailableBeds(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignPatient: patient id=%d assigned to room id=%d, occupancy %d/%d",
		req.PatientID, req.RoomID, result.OccupiedBeds, result.TotalBeds)

	return result, nil
}
