package patients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	patientRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/patient"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

// Service сервис регистратуры пациентов
// Работает только с данными пациента; размещение, перевод и выписка
// выполняются аллокатором (usecases), который владеет счётчиками занятости
type Service struct {
	patientRepo PatientRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пациентов
func NewService(patientRepo PatientRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Register регистрирует нового пациента
// Пациент создается в статусе DISCHARGED без палаты - койку он занимает
// только через операцию размещения
func (s *Service) Register(ctx context.Context, req *models.RegisterPatientRequest, scope domain.HospitalScope) (*models.PatientResponse, error) {
	s.logger.Info("Register: registering patient for hospital=%d", scope.HospitalID)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	// Проверяем дубликат по контактному номеру в рамках госпиталя
	existing, err := s.patientRepo.GetByContactNumber(ctx, scope.HospitalID, req.ContactNumber)
	if err != nil && !errors.Is(err, patientRepo.ErrPatientNotFound) {
		s.logger.Error("Register: failed to check contact number: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("Register: contact number %s already exists in hospital=%d",
			req.ContactNumber, scope.HospitalID)
		return nil, ErrDuplicateContactNumber
	}

	entryDate := time.Now()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	patient := &domain.Patient{
		HospitalID:    scope.HospitalID,
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Symptoms:      req.Symptoms,
		EntryDate:     entryDate,
		Status:        domain.StatusDischarged,
	}

	created, err := s.patientRepo.Create(ctx, patient)
	if err != nil {
		s.logger.Error("Register: failed to create patient: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: patient registered with id=%d for hospital=%d", created.ID, scope.HospitalID)
	return models.FromDomainPatient(created), nil
}

// GetByID получает пациента по ID в рамках госпиталя вызывающего
func (s *Service) GetByID(ctx context.Context, patientID int64, scope domain.HospitalScope) (*models.PatientResponse, error) {
	s.logger.Info("GetByID: fetching patient id=%d for hospital=%d", patientID, scope.HospitalID)

	patient, err := s.getScopedPatient(ctx, patientID, scope)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPatient(patient), nil
}

// List получает пациентов госпиталя с фильтрацией по статусу и палате
func (s *Service) List(ctx context.Context, req *models.ListPatientsRequest, scope domain.HospitalScope) (*models.PatientListResponse, error) {
	s.logger.Info("List: fetching patients for hospital=%d", scope.HospitalID)

	filter, err := req.ToDomainFilter(scope.HospitalID)
	if err != nil {
		s.logger.Warn("List: invalid filter for hospital=%d: %v", scope.HospitalID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	patients, err := s.patientRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for hospital=%d: %v", scope.HospitalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d patients for hospital=%d", len(patients), scope.HospitalID)
	return models.FromDomainPatientList(patients), nil
}

// ListByRoom получает размещенных пациентов палаты
func (s *Service) ListByRoom(ctx context.Context, roomID int64, scope domain.HospitalScope) (*models.PatientListResponse, error) {
	s.logger.Info("ListByRoom: fetching patients in room=%d for hospital=%d", roomID, scope.HospitalID)

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("ListByRoom: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("ListByRoom: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}
	if !scope.Covers(room.HospitalID) {
		s.logger.Warn("ListByRoom: room id=%d belongs to hospital=%d, caller scope=%d",
			roomID, room.HospitalID, scope.HospitalID)
		return nil, ErrRoomNotFound
	}

	status := domain.StatusAdmitted
	filter := domain.PatientsFilter{
		HospitalID: scope.HospitalID,
		RoomID:     &roomID,
		Status:     &status,
	}

	patients, err := s.patientRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByRoom: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByRoom: fetched %d patients in room=%d", len(patients), roomID)
	return models.FromDomainPatientList(patients), nil
}

// Update обновляет данные пациента
// Выписанные пациенты не редактируются
func (s *Service) Update(ctx context.Context, patientID int64, req *models.UpdatePatientRequest, scope domain.HospitalScope) (*models.PatientResponse, error) {
	s.logger.Info("Update: updating patient id=%d for hospital=%d", patientID, scope.HospitalID)

	patient, err := s.getScopedPatient(ctx, patientID, scope)
	if err != nil {
		return nil, err
	}

	if patient.IsDischarged() {
		s.logger.Warn("Update: patient id=%d is discharged", patientID)
		return nil, ErrCannotUpdateDischarged
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.ContactNumber != nil && *req.ContactNumber != patient.ContactNumber {
		// Новый контактный номер не должен дублировать чужой
		existing, err := s.patientRepo.GetByContactNumber(ctx, scope.HospitalID, *req.ContactNumber)
		if err != nil && !errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Error("Update: failed to check contact number: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		if existing != nil && existing.ID != patientID {
			s.logger.Warn("Update: contact number %s already exists in hospital=%d",
				*req.ContactNumber, scope.HospitalID)
			return nil, ErrDuplicateContactNumber
		}
		patient.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.Symptoms != nil {
		patient.Symptoms = req.Symptoms
	}
	if req.EntryDate != nil {
		patient.EntryDate = *req.EntryDate
	}

	if err := validatePatient(patient); err != nil {
		s.logger.Warn("Update: validation failed for patient id=%d: %v", patientID, err)
		return nil, err
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Update: patient id=%d not found during update", patientID)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Update: repository error for patient id=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: patient id=%d updated successfully", patientID)
	return models.FromDomainPatient(patient), nil
}

// getScopedPatient получает пациента и проверяет принадлежность госпиталю вызывающего
// Чужой пациент для читающих операций неотличим от несуществующего
func (s *Service) getScopedPatient(ctx context.Context, patientID int64, scope domain.HospitalScope) (*domain.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("getScopedPatient: patient id=%d not found", patientID)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("getScopedPatient: repository error for patient id=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: getScopedPatient - repository error: %v", ErrInternal, err)
	}

	if !scope.Covers(patient.HospitalID) {
		s.logger.Warn("getScopedPatient: patient id=%d belongs to hospital=%d, caller scope=%d",
			patientID, patient.HospitalID, scope.HospitalID)
		return nil, ErrPatientNotFound
	}

	return patient, nil
}
