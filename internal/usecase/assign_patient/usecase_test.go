package assign_patient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	patientRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/patient"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
	"github.com/m04kA/HBT-OccupancyService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeStore in-memory хранилище для тестов
// Мутации защищены мьютексом fakeTxManager, как строки БД блокировкой транзакции
type fakeStore struct {
	rooms            map[int64]*domain.Room
	patients         map[int64]*domain.Patient
	hospitalOccupied map[int64]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:            make(map[int64]*domain.Room),
		patients:         make(map[int64]*domain.Patient),
		hospitalOccupied: make(map[int64]int),
	}
}

func (s *fakeStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, ok := s.patients[id]
	if !ok {
		return nil, patientRepo.ErrPatientNotFound
	}
	copied := *patient
	return &copied, nil
}

func (s *fakeStore) CountAdmittedByRoom(ctx context.Context, roomID int64) (int, error) {
	count := 0
	for _, p := range s.patients {
		if p.IsAdmitted() && p.InRoom(roomID) {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) Admit(ctx context.Context, id int64, roomID int64) error {
	patient, ok := s.patients[id]
	if !ok {
		return patientRepo.ErrPatientNotFound
	}
	patient.Status = domain.StatusAdmitted
	patient.RoomID = &roomID
	patient.ExitDate = nil
	return nil
}

func (s *fakeStore) IncrementOccupiedBeds(ctx context.Context, id int64) error {
	s.hospitalOccupied[id]++
	return nil
}

// fakeTxManager сериализует транзакции глобальным мьютексом
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func newTestUseCase(store *fakeStore) *UseCase {
	return NewUseCase(store, store, store, &fakeTxManager{}, nopLogger{})
}

func testRoom(id, hospitalID int64, totalBeds int) *domain.Room {
	return &domain.Room{
		ID:         id,
		HospitalID: hospitalID,
		RoomNumber: "101",
		TotalBeds:  totalBeds,
	}
}

func testPatient(id, hospitalID int64, status domain.PatientStatus, roomID *int64) *domain.Patient {
	return &domain.Patient{
		ID:            id,
		HospitalID:    hospitalID,
		RoomID:        roomID,
		Name:          "Иван Иванов",
		Age:           42,
		Gender:        "MALE",
		ContactNumber: "+79990001122",
		EntryDate:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:        status,
	}
}

func TestExecute_Success(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 2)
	store.patients[100] = testPatient(100, 10, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10, ReceptionistID: 1, Role: domain.RoleReceptionist}

	resp, err := uc.Execute(context.Background(), &Request{PatientID: 100, RoomID: 1}, scope)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, 2, resp.TotalBeds)
	assert.Equal(t, 1, resp.OccupiedBeds)
	assert.Equal(t, 1, resp.AvailableBeds)

	patient := store.patients[100]
	assert.Equal(t, domain.StatusAdmitted, patient.Status)
	require.NotNil(t, patient.RoomID)
	assert.Equal(t, int64(1), *patient.RoomID)
	assert.Nil(t, patient.ExitDate)

	assert.Equal(t, 1, store.hospitalOccupied[10])
}

func TestExecute_LastBed(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 2)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))
	store.patients[101] = testPatient(101, 10, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	resp, err := uc.Execute(context.Background(), &Request{PatientID: 101, RoomID: 1}, scope)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.OccupiedBeds)
	assert.Equal(t, 0, resp.AvailableBeds)
}

func TestExecute_RoomFull(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 1)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))
	store.patients[101] = testPatient(101, 10, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 101, RoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrRoomFull)

	// Пациент и счётчик не тронуты
	assert.Equal(t, domain.StatusDischarged, store.patients[101].Status)
	assert.Equal(t, 0, store.hospitalOccupied[10])
}

func TestExecute_RoomNotFound(t *testing.T) {
	store := newFakeStore()
	store.patients[100] = testPatient(100, 10, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, RoomID: 99}, scope)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_PatientNotFound(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 2)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 999, RoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestExecute_AlreadyAdmitted(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 2)
	store.rooms[2] = testRoom(2, 10, 2)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](2))

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, RoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrAlreadyAdmitted)
}

func TestExecute_ScopeViolation_ForeignRoom(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 20, 2)
	store.patients[100] = testPatient(100, 10, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, RoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrScopeViolation)
}

func TestExecute_ScopeViolation_ForeignPatient(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 2)
	store.patients[100] = testPatient(100, 20, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, RoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrScopeViolation)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(newFakeStore())
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 0, RoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PatientID: 1, RoomID: -5}, scope)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Два конкурентных размещения на последнюю койку: ровно одно проходит
func TestExecute_ConcurrentAssignsLastBed(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, 1)
	store.patients[100] = testPatient(100, 10, domain.StatusDischarged, nil)
	store.patients[101] = testPatient(101, 10, domain.StatusDischarged, nil)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, patientID := range []int64{100, 101} {
		wg.Add(1)
		go func(i int, patientID int64) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{PatientID: patientID, RoomID: 1}, scope)
		}(i, patientID)
	}
	wg.Wait()

	succeeded := 0
	full := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrRoomFull):
			full++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one assign must win the last bed")
	assert.Equal(t, 1, full)
	assert.Equal(t, 1, store.hospitalOccupied[10])

	occupied, err := store.CountAdmittedByRoom(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, occupied)
}
