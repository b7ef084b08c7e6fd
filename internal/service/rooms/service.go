package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	hospitalRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/hospital"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
	"github.com/m04kA/HBT-OccupancyService/internal/service/rooms/models"
)

// Service сервис для чтения палат и занятости
// Не блокирует палаты: снимки занятости консистентны только на момент чтения,
// решения о размещении принимает аллокатор под блокировкой
type Service struct {
	roomRepo     RoomRepository
	patientRepo  PatientRepository
	hospitalRepo HospitalRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса палат
func NewService(
	roomRepo RoomRepository,
	patientRepo PatientRepository,
	hospitalRepo HospitalRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		patientRepo:  patientRepo,
		hospitalRepo: hospitalRepo,
		logger:       logger,
	}
}

// List получает все палаты госпиталя с живой занятостью каждой
func (s *Service) List(ctx context.Context, scope domain.HospitalScope) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms for hospital=%d", scope.HospitalID)

	rooms, err := s.roomRepo.ListByHospital(ctx, scope.HospitalID)
	if err != nil {
		s.logger.Error("List: repository error for hospital=%d: %v", scope.HospitalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.RoomListResponse{
		Rooms: make([]models.RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		occupied, err := s.patientRepo.CountAdmittedByRoom(ctx, room.ID)
		if err != nil {
			s.logger.Error("List: failed to count occupancy for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: List - failed to count occupancy: %v", ErrInternal, err)
		}
		resp.Rooms = append(resp.Rooms, *models.FromDomainRoom(room, occupied))
	}

	s.logger.Info("List: fetched %d rooms for hospital=%d", len(resp.Rooms), scope.HospitalID)
	return resp, nil
}

// GetByID получает палату с занятостью в рамках госпиталя вызывающего
func (s *Service) GetByID(ctx context.Context, roomID int64, scope domain.HospitalScope) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d for hospital=%d", roomID, scope.HospitalID)

	room, err := s.getScopedRoom(ctx, roomID, scope)
	if err != nil {
		return nil, err
	}

	occupied, err := s.patientRepo.CountAdmittedByRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("GetByID: failed to count occupancy for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to count occupancy: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room, occupied), nil
}

// GetOccupancy получает снимок занятости палаты
func (s *Service) GetOccupancy(ctx context.Context, roomID int64, scope domain.HospitalScope) (*models.RoomResponse, error) {
	// Снимок идентичен GetByID, отдельный метод сохранен как отдельная операция API
	return s.GetByID(ctx, roomID, scope)
}

// GetHospitalOccupancy получает агрегированную занятость госпиталя вызывающего
func (s *Service) GetHospitalOccupancy(ctx context.Context, scope domain.HospitalScope) (*models.HospitalOccupancyResponse, error) {
	s.logger.Info("GetHospitalOccupancy: fetching occupancy for hospital=%d", scope.HospitalID)

	hospital, err := s.hospitalRepo.GetByID(ctx, scope.HospitalID)
	if err != nil {
		if errors.Is(err, hospitalRepo.ErrHospitalNotFound) {
			s.logger.Warn("GetHospitalOccupancy: hospital id=%d not found", scope.HospitalID)
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("GetHospitalOccupancy: repository error for hospital=%d: %v", scope.HospitalID, err)
		return nil, fmt.Errorf("%w: GetHospitalOccupancy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHospital(hospital), nil
}

// getScopedRoom получает палату и проверяет принадлежность госпиталю вызывающего
// Чужая палата для читающих операций неотличима от несуществующей
func (s *Service) getScopedRoom(ctx context.Context, roomID int64, scope domain.HospitalScope) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("getScopedRoom: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("getScopedRoom: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: getScopedRoom - repository error: %v", ErrInternal, err)
	}

	if !scope.Covers(room.HospitalID) {
		s.logger.Warn("getScopedRoom: room id=%d belongs to hospital=%d, caller scope=%d",
			roomID, room.HospitalID, scope.HospitalID)
		return nil, ErrRoomNotFound
	}

	return room, nil
}
