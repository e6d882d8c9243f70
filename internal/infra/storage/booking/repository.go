package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/wildpath/WP-BookingService/internal/domain"
	"github.com/wildpath/WP-BookingService/pkg/dbmetrics"
	"github.com/wildpath/WP-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки postgres при нарушении unique constraint
const uniqueViolationCode = "23505"

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"reference_code",
	"user_id",
	"adventure_id",
	"guide_id",
	"booking_date",
	"start_time",
	"participants",
	"base_price",
	"discount_amount",
	"tax_amount",
	"add_ons_amount",
	"total_amount",
	"status",
	"payment_status",
	"payment_ref",
	"expires_at",
	"confirmed_at",
	"cancelled_at",
	"cancellation_reason",
	"lead_name",
	"lead_email",
	"lead_phone",
	"special_requests",
	"add_ons",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её —
// usecase создания бронирования выполняет финальную проверку доступности
// и вставку в одной сериализуемой транзакции
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addOnsPayload, err := json.Marshal(booking.AddOns)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal add-ons: %v", ErrEncodeAddOns, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference_code",
			"user_id",
			"adventure_id",
			"guide_id",
			"booking_date",
			"start_time",
			"participants",
			"base_price",
			"discount_amount",
			"tax_amount",
			"add_ons_amount",
			"total_amount",
			"status",
			"payment_status",
			"payment_ref",
			"expires_at",
			"confirmed_at",
			"lead_name",
			"lead_email",
			"lead_phone",
			"special_requests",
			"add_ons",
		).
		Values(
			booking.ReferenceCode,
			booking.UserID,
			booking.AdventureID,
			booking.GuideID,
			booking.BookingDate,
			booking.StartTime,
			booking.Participants,
			booking.BasePrice,
			booking.DiscountAmount,
			booking.TaxAmount,
			booking.AddOnsAmount,
			booking.TotalAmount,
			booking.Status,
			booking.PaymentStatus,
			booking.PaymentRef,
			booking.ExpiresAt,
			booking.ConfirmedAt,
			booking.LeadName,
			booking.LeadEmail,
			booking.LeadPhone,
			booking.SpecialRequests,
			addOnsPayload,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateReference, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetCapacityHolders получает бронирования, занимающие места на дату:
// confirmed всегда, pending — только с живым холдом (expires_at в будущем).
// Истёкшие pending отфильтровываются на чтении, never на записи.
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания бронирования
// блокирует строки на время финальной проверки доступности
func (r *Repository) GetCapacityHolders(ctx context.Context, adventureID int64, date time.Time, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"adventure_id": adventureID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Or{
			squirrel.Eq{"status": domain.StatusConfirmed},
			squirrel.And{
				squirrel.Eq{"status": domain.StatusPending},
				squirrel.Or{
					squirrel.Eq{"expires_at": nil},
					squirrel.Gt{"expires_at": now},
				},
			},
		}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCapacityHolders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCapacityHolders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetConfirmedDatesByUser получает даты, на которые пользователь уже имеет
// подтвержденное бронирование этого приключения в указанном окне
// Используется агрегатором заблокированных дат календаря
func (r *Repository) GetConfirmedDatesByUser(ctx context.Context, userID, adventureID int64, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT booking_date").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"adventure_id": adventureID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		OrderBy("booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedDatesByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedDatesByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetConfirmedDatesByUser - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedDatesByUser - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Confirm переводит бронирование в confirmed после подтверждения оплаты
// Снимает холд (expires_at) и фиксирует payment_ref
func (r *Repository) Confirm(ctx context.Context, id int64, paymentRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("payment_status", domain.PaymentStatusPaid).
		Set("payment_ref", paymentRef).
		Set("confirmed_at", squirrel.Expr("NOW()")).
		Set("expires_at", nil).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Confirm")
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// execExpectingRow выполняет update и маппит "0 строк" в ErrBookingNotFound
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var addOnsPayload []byte

	err := row.Scan(
		&booking.ID,
		&booking.ReferenceCode,
		&booking.UserID,
		&booking.AdventureID,
		&booking.GuideID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Participants,
		&booking.BasePrice,
		&booking.DiscountAmount,
		&booking.TaxAmount,
		&booking.AddOnsAmount,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentRef,
		&booking.ExpiresAt,
		&booking.ConfirmedAt,
		&booking.CancelledAt,
		&booking.CancellationReason,
		&booking.LeadName,
		&booking.LeadEmail,
		&booking.LeadPhone,
		&booking.SpecialRequests,
		&addOnsPayload,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(addOnsPayload) > 0 {
		if err := json.Unmarshal(addOnsPayload, &booking.AddOns); err != nil {
			return nil, fmt.Errorf("unmarshal add-ons payload: %v", err)
		}
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
