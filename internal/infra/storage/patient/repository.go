package patient

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/pkg/dbmetrics"
	"github.com/m04kA/HBT-OccupancyService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с пациентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var patientColumns = []string{
	"id",
	"hospital_id",
	"room_id",
	"name",
	"age",
	"gender",
	"contact_number",
	"address",
	"symptoms",
	"entry_date",
	"exit_date",
	"status",
	"created_at",
	"updated_at",
}

// Create создает нового пациента
func (r *Repository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("patients").
		Columns(
			"hospital_id",
			"room_id",
			"name",
			"age",
			"gender",
			"contact_number",
			"address",
			"symptoms",
			"entry_date",
			"exit_date",
			"status",
		).
		Values(
			patient.HospitalID,
			patient.RoomID,
			patient.Name,
			patient.Age,
			patient.Gender,
			patient.ContactNumber,
			patient.Address,
			patient.Symptoms,
			patient.EntryDate,
			patient.ExitDate,
			patient.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&patient.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	patient.CreatedAt = createdAt.Time
	patient.UpdatedAt = updatedAt.Time

	return patient, nil
}

// GetByID получает пациента по ID
// Принадлежность госпиталю проверяется на уровне usecase/service,
// чтобы отличать "не найден" от "чужой госпиталь"
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patientColumns...).
		From("patients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	patient, err := r.scanPatientRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan patient: %v", ErrScanRow, err)
	}

	return patient, nil
}

// GetByContactNumber получает пациента госпиталя по контактному номеру
// Используется для проверки дубликатов при регистрации
func (r *Repository) GetByContactNumber(ctx context.Context, hospitalID int64, contactNumber string) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patientColumns...).
		From("patients").
		Where(squirrel.Eq{"hospital_id": hospitalID, "contact_number": contactNumber}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByContactNumber - build select query: %v", ErrBuildQuery, err)
	}

	patient, err := r.scanPatientRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContactNumber - scan patient: %v", ErrScanRow, err)
	}

	return patient, nil
}

// ListWithFilter получает пациентов госпиталя с фильтрацией по палате и статусу
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.PatientsFilter) ([]*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(patientColumns...).
		From("patients").
		Where(squirrel.Eq{"hospital_id": filter.HospitalID}).
		OrderBy("created_at DESC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPatients(rows)
}

// CountAdmittedByRoom считает пациентов со статусом ADMITTED в палате
// Внутри транзакции с заблокированной палатой возвращает живую занятость,
// на которой основана проверка вместимости
func (r *Repository) CountAdmittedByRoom(ctx context.Context, roomID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("patients").
		Where(squirrel.Eq{"room_id": roomID, "status": domain.StatusAdmitted}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountAdmittedByRoom - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAdmittedByRoom - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет редактируемые поля пациента
func (r *Repository) Update(ctx context.Context, patient *domain.Patient) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("name", patient.Name).
		Set("age", patient.Age).
		Set("gender", patient.Gender).
		Set("contact_number", patient.ContactNumber).
		Set("address", patient.Address).
		Set("symptoms", patient.Symptoms).
		Set("entry_date", patient.EntryDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": patient.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Update", query, args)
}

// Admit переводит пациента в статус ADMITTED с размещением в палате
// Сбрасывает дату выписки - повторное поступление начинает новый эпизод
func (r *Repository) Admit(ctx context.Context, id int64, roomID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("status", domain.StatusAdmitted).
		Set("room_id", roomID).
		Set("exit_date", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Admit - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Admit", query, args)
}

// SetRoom переносит пациента в другую палату без смены статуса
// Используется для перевода уже размещенного пациента (чистый transfer)
func (r *Repository) SetRoom(ctx context.Context, id int64, roomID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("room_id", roomID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetRoom - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetRoom", query, args)
}

// Discharge выписывает пациента: статус DISCHARGED, палата очищается,
// проставляется дата выписки
func (r *Repository) Discharge(ctx context.Context, id int64, exitDate time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("status", domain.StatusDischarged).
		Set("room_id", nil).
		Set("exit_date", exitDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Discharge - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Discharge", query, args)
}

// execExpectingRow выполняет UPDATE и проверяет, что строка была затронута
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPatientRow сканирует одну строку в модель пациента
func (r *Repository) scanPatientRow(row rowScanner) (*domain.Patient, error) {
	var patient domain.Patient
	var entryDate time.Time
	var exitDate sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&patient.ID,
		&patient.HospitalID,
		&patient.RoomID,
		&patient.Name,
		&patient.Age,
		&patient.Gender,
		&patient.ContactNumber,
		&patient.Address,
		&patient.Symptoms,
		&entryDate,
		&exitDate,
		&patient.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	patient.EntryDate = entryDate
	if exitDate.Valid {
		patient.ExitDate = &exitDate.Time
	}
	patient.CreatedAt = createdAt.Time
	patient.UpdatedAt = updatedAt.Time

	return &patient, nil
}

// scanPatients сканирует результаты запроса в слайс пациентов
func (r *Repository) scanPatients(rows *sql.Rows) ([]*domain.Patient, error) {
	patients := make([]*domain.Patient, 0)

	for rows.Next() {
		patient, err := r.scanPatientRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPatients - scan row: %v", ErrScanRow, err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPatients - rows error: %v", ErrScanRow, err)
	}

	return patients, nil
}
