package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/wildpath/WP-BookingService/internal/domain"
	"github.com/wildpath/WP-BookingService/pkg/dbmetrics"
	"github.com/wildpath/WP-BookingService/pkg/psqlbuilder"
)

// overrideColumns колонки таблицы adventure_availability в порядке сканирования
var overrideColumns = []string{
	"id",
	"adventure_id",
	"date",
	"available_spots",
	"booked_spots",
	"is_blocked",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с override-записями доступности
// Записи создаются администраторами; букинг-ядро их читает и инкрементирует
// booked_spots при создании бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByAdventureAndDate получает override для (приключение, дата)
// Отсутствие записи — штатный результат (ErrOverrideNotFound), не сбой.
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания бронирования
// блокирует запись на время проверки и инкремента booked_spots
func (r *Repository) GetByAdventureAndDate(ctx context.Context, adventureID int64, date time.Time) (*domain.AvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(overrideColumns...).
		From("adventure_availability").
		Where(squirrel.Eq{"adventure_id": adventureID}).
		Where(squirrel.Eq{"date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAdventureAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.AvailabilityOverride
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.AdventureID,
		&override.Date,
		&override.AvailableSpots,
		&override.BookedSpots,
		&override.IsBlocked,
		&override.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAdventureAndDate - scan override: %v", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// ListBlockedDates получает все заблокированные администратором даты
// приключения в окне [from, to]
func (r *Repository) ListBlockedDates(ctx context.Context, adventureID int64, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From("adventure_availability").
		Where(squirrel.Eq{"adventure_id": adventureID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		Where(squirrel.Or{
			squirrel.Eq{"is_blocked": true},
			squirrel.Eq{"status": domain.AvailabilityStatusUnavailable},
		}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// IncrementBookedSpots увеличивает booked_spots override-записи
// Вызывается внутри сериализуемой транзакции создания бронирования,
// после блокировки записи через GetByAdventureAndDate
func (r *Repository) IncrementBookedSpots(ctx context.Context, adventureID int64, date time.Time, participants int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("adventure_availability").
		Set("booked_spots", squirrel.Expr("booked_spots + ?", participants)).
		Where(squirrel.Eq{"adventure_id": adventureID}).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementBookedSpots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBookedSpots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBookedSpots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// DecrementBookedSpots уменьшает booked_spots override-записи
// Вызывается при отмене бронирования, счетчик не уходит ниже нуля
func (r *Repository) DecrementBookedSpots(ctx context.Context, adventureID int64, date time.Time, participants int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("adventure_availability").
		Set("booked_spots", squirrel.Expr("GREATEST(booked_spots - ?, 0)", participants)).
		Where(squirrel.Eq{"adventure_id": adventureID}).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementBookedSpots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementBookedSpots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementBookedSpots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}
