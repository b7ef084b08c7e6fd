package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	hospitalRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/hospital"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (r *fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (r *fakeRoomRepo) ListByHospital(ctx context.Context, hospitalID int64) ([]*domain.Room, error) {
	var result []*domain.Room
	for _, room := range r.rooms {
		if room.HospitalID == hospitalID {
			copied := *room
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakePatientRepo struct {
	occupancy map[int64]int
}

func (r *fakePatientRepo) CountAdmittedByRoom(ctx context.Context, roomID int64) (int, error) {
	return r.occupancy[roomID], nil
}

type fakeHospitalRepo struct {
	hospitals map[int64]*domain.Hospital
}

func (r *fakeHospitalRepo) GetByID(ctx context.Context, id int64) (*domain.Hospital, error) {
	hospital, ok := r.hospitals[id]
	if !ok {
		return nil, hospitalRepo.ErrHospitalNotFound
	}
	copied := *hospital
	return &copied, nil
}

func newTestService() (*Service, *fakeRoomRepo, *fakePatientRepo, *fakeHospitalRepo) {
	rooms := &fakeRoomRepo{rooms: make(map[int64]*domain.Room)}
	patients := &fakePatientRepo{occupancy: make(map[int64]int)}
	hospitals := &fakeHospitalRepo{hospitals: make(map[int64]*domain.Hospital)}
	return NewService(rooms, patients, hospitals, nopLogger{}), rooms, patients, hospitals
}

func TestList_LiveOccupancy(t *testing.T) {
	svc, roomsRepo, patientsRepo, _ := newTestService()
	scope := domain.HospitalScope{HospitalID: 10}

	roomsRepo.rooms[1] = &domain.Room{ID: 1, HospitalID: 10, RoomNumber: "101", TotalBeds: 4}
	roomsRepo.rooms[2] = &domain.Room{ID: 2, HospitalID: 20, RoomNumber: "201", TotalBeds: 2}
	patientsRepo.occupancy[1] = 3

	resp, err := svc.List(context.Background(), scope)
	require.NoError(t, err)

	// Только палаты своего госпиталя
	require.Len(t, resp.Rooms, 1)
	room := resp.Rooms[0]
	assert.Equal(t, int64(1), room.ID)
	assert.Equal(t, 3, room.OccupiedBeds)
	assert.Equal(t, 1, room.AvailableBeds)
}

func TestGetByID_Success(t *testing.T) {
	svc, roomsRepo, patientsRepo, _ := newTestService()
	scope := domain.HospitalScope{HospitalID: 10}

	roomsRepo.rooms[1] = &domain.Room{ID: 1, HospitalID: 10, RoomNumber: "101", TotalBeds: 4}
	patientsRepo.occupancy[1] = 4

	resp, err := svc.GetByID(context.Background(), 1, scope)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.OccupiedBeds)
	assert.Equal(t, 0, resp.AvailableBeds)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99, domain.HospitalScope{HospitalID: 10})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

// Чужая палата неотличима от несуществующей
func TestGetByID_ForeignRoom(t *testing.T) {
	svc, roomsRepo, _, _ := newTestService()
	roomsRepo.rooms[1] = &domain.Room{ID: 1, HospitalID: 20, RoomNumber: "101", TotalBeds: 4}

	_, err := svc.GetByID(context.Background(), 1, domain.HospitalScope{HospitalID: 10})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetHospitalOccupancy(t *testing.T) {
	svc, _, _, hospitalsRepo := newTestService()
	scope := domain.HospitalScope{HospitalID: 10}

	hospitalsRepo.hospitals[10] = &domain.Hospital{
		ID:           10,
		Name:         "Городская больница №1",
		TotalBeds:    120,
		OccupiedBeds: 75,
	}

	resp, err := svc.GetHospitalOccupancy(context.Background(), scope)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.HospitalID)
	assert.Equal(t, 120, resp.TotalBeds)
	assert.Equal(t, 75, resp.OccupiedBeds)
	assert.Equal(t, 45, resp.AvailableBeds)
}

func TestGetHospitalOccupancy_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetHospitalOccupancy(context.Background(), domain.HospitalScope{HospitalID: 99})
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}
