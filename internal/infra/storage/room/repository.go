package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/pkg/dbmetrics"
	"github.com/m04kA/HBT-OccupancyService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения палат
// Палаты создаются и редактируются adminservice, здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория палат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var roomColumns = []string{
	"id",
	"hospital_id",
	"room_number",
	"total_beds",
	"created_at",
	"updated_at",
}

// GetByID получает палату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает палату по ID с блокировкой строки (FOR UPDATE)
// Блокировка сериализует конкурентные размещения в одну палату:
// проверка вместимости и запись пациента выполняются под ней до конца транзакции
// Вызывать только внутри транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.HospitalID,
		&room.RoomNumber,
		&room.TotalBeds,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// ListByHospital получает все палаты госпиталя, упорядоченные по номеру
func (r *Repository) ListByHospital(ctx context.Context, hospitalID int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"hospital_id": hospitalID}).
		OrderBy("room_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHospital - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHospital - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.HospitalID,
			&room.RoomNumber,
			&room.TotalBeds,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByHospital - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time

		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHospital - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
