package hospital

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/pkg/dbmetrics"
	"github.com/m04kA/HBT-OccupancyService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с агрегированной занятостью госпиталя
// Счётчик occupied_beds меняется только атомарными инкрементом/декрементом,
// никогда через read-modify-write - иначе конкурентные обновления теряются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория госпиталей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает госпиталь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hospital, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"contact_number",
		"address",
		"city",
		"state",
		"total_beds",
		"occupied_beds",
		"average_rating",
		"total_reviews",
		"created_at",
		"updated_at",
	).
		From("hospitals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var hospital domain.Hospital
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.ContactNumber,
		&hospital.Address,
		&hospital.City,
		&hospital.State,
		&hospital.TotalBeds,
		&hospital.OccupiedBeds,
		&hospital.AverageRating,
		&hospital.TotalReviews,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHospitalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hospital: %v", ErrScanRow, err)
	}

	hospital.CreatedAt = createdAt.Time
	hospital.UpdatedAt = updatedAt.Time

	return &hospital, nil
}

// IncrementOccupiedBeds атомарно увеличивает счётчик занятых коек госпиталя
// Один безусловный UPDATE без предварительного чтения счётчика
func (r *Repository) IncrementOccupiedBeds(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hospitals").
		Set("occupied_beds", squirrel.Expr("occupied_beds + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementOccupiedBeds - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementOccupiedBeds - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementOccupiedBeds - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHospitalNotFound
	}

	return nil
}

// DecrementOccupiedBeds атомарно уменьшает счётчик занятых коек госпиталя
// Счётчик не опускается ниже нуля даже при аномальном состоянии
func (r *Repository) DecrementOccupiedBeds(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hospitals").
		Set("occupied_beds", squirrel.Expr("CASE WHEN occupied_beds > 0 THEN occupied_beds - 1 ELSE 0 END")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementOccupiedBeds - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementOccupiedBeds - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementOccupiedBeds - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHospitalNotFound
	}

	return nil
}
