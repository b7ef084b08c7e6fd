package reassign_patient

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

func (s *fakeStore) SetRoom(ctx context.Context, id int64, roomID int64) error {
	patient, ok := s.patients[id]
	if !ok {
		return patientRepo.ErrPatientNotFound
	}
	patient.RoomID = &roomID
	return nil
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

func testRoom(id, hospitalID int64, number string, totalBeds int) *domain.Room {
	return &domain.Room{
		ID:         id,
		HospitalID: hospitalID,
		RoomNumber: number,
		TotalBeds:  totalBeds,
	}
}

func testPatient(id, hospitalID int64, status domain.PatientStatus, roomID *int64) *domain.Patient {
	return &domain.Patient{
		ID:            id,
		HospitalID:    hospitalID,
		RoomID:        roomID,
		Name:          "Мария Петрова",
		Age:           35,
		Gender:        "FEMALE",
		ContactNumber: "+79990003344",
		EntryDate:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:        status,
	}
}

// Перевод размещенного пациента: счётчик госпиталя не меняется
func TestExecute_Transfer(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, "101", 2)
	store.rooms[2] = testRoom(2, 10, "102", 2)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))
	store.hospitalOccupied[10] = 1

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	resp, err := uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 2}, scope)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.RoomID)
	assert.Equal(t, "102", resp.RoomNumber)
	assert.Equal(t, 1, resp.OccupiedBeds)
	assert.Equal(t, 1, resp.AvailableBeds)
	assert.False(t, resp.Readmitted)

	patient := store.patients[100]
	assert.Equal(t, domain.StatusAdmitted, patient.Status)
	require.NotNil(t, patient.RoomID)
	assert.Equal(t, int64(2), *patient.RoomID)

	// Койка уже была учтена, перевод не трогает счётчик
	assert.Equal(t, 1, store.hospitalOccupied[10])
}

// Повторное поступление выписанного пациента: инкремент как при первичном размещении
func TestExecute_Readmission(t *testing.T) {
	store := newFakeStore()
	store.rooms[2] = testRoom(2, 10, "102", 2)
	exitDate := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	patient := testPatient(100, 10, domain.StatusDischarged, nil)
	patient.ExitDate = &exitDate
	store.patients[100] = patient

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	resp, err := uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 2}, scope)
	require.NoError(t, err)

	assert.True(t, resp.Readmitted)
	assert.Equal(t, 1, resp.OccupiedBeds)

	updated := store.patients[100]
	assert.Equal(t, domain.StatusAdmitted, updated.Status)
	require.NotNil(t, updated.RoomID)
	assert.Equal(t, int64(2), *updated.RoomID)
	assert.Nil(t, updated.ExitDate)

	assert.Equal(t, 1, store.hospitalOccupied[10])
}

func TestExecute_SameRoom(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, "101", 2)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 1}, scope)
	assert.ErrorIs(t, err, ErrSameRoom)
}

func TestExecute_RoomFull(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, "101", 2)
	store.rooms[2] = testRoom(2, 10, "102", 1)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))
	store.patients[101] = testPatient(101, 10, domain.StatusAdmitted, ptr.Ptr[int64](2))
	store.hospitalOccupied[10] = 2

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 2}, scope)
	assert.ErrorIs(t, err, ErrRoomFull)

	// Пациент остался в исходной палате
	require.NotNil(t, store.patients[100].RoomID)
	assert.Equal(t, int64(1), *store.patients[100].RoomID)
	assert.Equal(t, 2, store.hospitalOccupied[10])
}

func TestExecute_RoomNotFound(t *testing.T) {
	store := newFakeStore()
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 99}, scope)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_PatientNotFound(t *testing.T) {
	store := newFakeStore()
	store.rooms[2] = testRoom(2, 10, "102", 2)

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 999, NewRoomID: 2}, scope)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestExecute_ScopeViolation(t *testing.T) {
	store := newFakeStore()
	store.rooms[2] = testRoom(2, 20, "102", 2)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 2}, scope)
	assert.ErrorIs(t, err, ErrScopeViolation)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(newFakeStore())
	scope := domain.HospitalScope{HospitalID: 10}

	_, err := uc.Execute(context.Background(), &Request{PatientID: -1, NewRoomID: 2}, scope)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PatientID: 100, NewRoomID: 0}, scope)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Два конкурентных перевода на последнюю койку палаты назначения
func TestExecute_ConcurrentTransfersLastBed(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = testRoom(1, 10, "101", 2)
	store.rooms[2] = testRoom(2, 10, "102", 1)
	store.patients[100] = testPatient(100, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))
	store.patients[101] = testPatient(101, 10, domain.StatusAdmitted, ptr.Ptr[int64](1))
	store.hospitalOccupied[10] = 2

	uc := newTestUseCase(store)
	scope := domain.HospitalScope{HospitalID: 10}

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, patientID := range []int64{100, 101} {
		wg.Add(1)
		go func(i int, patientID int64) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{PatientID: patientID, NewRoomID: 2}, scope)
		}(i, patientID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrRoomFull)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one transfer must win the last bed")

	occupied, err := store.CountAdmittedByRoom(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, occupied)

	// Переводы не трогают счётчик госпиталя
	assert.Equal(t, 2, store.hospitalOccupied[10])
}
