package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	"github.com/m04kA/KDP-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/KDP-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации расписания
// Конфигурация хранится в трёх таблицах: schedule_configs (агрегат),
// time_blocks (блоки с массивом дней недели) и rest_days
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает активную конфигурацию расписания вместе с блоками
// и днями отдыха. Активной может быть не более одной конфигурации
func (r *Repository) GetActive(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"one_event_per_day",
		"default_event_duration_hours",
		"created_at",
		"updated_at",
	).
		From("schedule_configs").
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.Name,
		&config.Active,
		&config.OneEventPerDay,
		&config.DefaultEventDurationHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	if config.TimeBlocks, err = r.getTimeBlocks(ctx, config.ID); err != nil {
		return nil, err
	}
	if config.RestDays, err = r.getRestDays(ctx, config.ID); err != nil {
		return nil, err
	}

	return &config, nil
}

// ReplaceActive заменяет содержимое активной конфигурации:
// обновляет агрегат и пересоздаёт блоки и дни отдыха.
// Вызывается внутри транзакции (usecase обновления конфигурации)
func (r *Repository) ReplaceActive(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_configs").
		Set("name", config.Name).
		Set("one_event_per_day", config.OneEventPerDay).
		Set("default_event_duration_hours", config.DefaultEventDurationHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"active": true}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - execute update: %v", ErrExecQuery, err)
	}

	config.Active = true
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	if err := r.replaceTimeBlocks(ctx, config.ID, config.TimeBlocks); err != nil {
		return nil, err
	}
	if err := r.replaceRestDays(ctx, config.ID, config.RestDays); err != nil {
		return nil, err
	}

	return config, nil
}

func (r *Repository) getTimeBlocks(ctx context.Context, configID int64) ([]domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"days",
		"start_time",
		"end_time",
		"duration_hours",
		"half_hour_break",
		"max_events_per_block",
		"one_reservation_per_day",
	).
		From("time_blocks").
		Where(squirrel.Eq{"config_id": configID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getTimeBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getTimeBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]domain.TimeBlock, 0)
	for rows.Next() {
		var block domain.TimeBlock
		var days pq.Int64Array

		err := rows.Scan(
			&block.ID,
			&block.Name,
			&days,
			&block.StartTime,
			&block.EndTime,
			&block.DurationHours,
			&block.HalfHourBreak,
			&block.MaxEventsPerBlock,
			&block.OneReservationPerDay,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getTimeBlocks - scan row: %v", ErrScanRow, err)
		}

		block.Days = make([]int, len(days))
		for i, d := range days {
			block.Days[i] = int(d)
		}

		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getTimeBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

func (r *Repository) getRestDays(ctx context.Context, configID int64) ([]domain.RestDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day",
		"fee",
		"can_be_released",
	).
		From("rest_days").
		Where(squirrel.Eq{"config_id": configID}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getRestDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getRestDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	restDays := make([]domain.RestDay, 0)
	for rows.Next() {
		var rd domain.RestDay
		if err := rows.Scan(&rd.ID, &rd.Day, &rd.Fee, &rd.CanBeReleased); err != nil {
			return nil, fmt.Errorf("%w: getRestDays - scan row: %v", ErrScanRow, err)
		}
		restDays = append(restDays, rd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getRestDays - rows error: %v", ErrScanRow, err)
	}

	return restDays, nil
}

func (r *Repository) replaceTimeBlocks(ctx context.Context, configID int64, blocks []domain.TimeBlock) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"config_id": configID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceTimeBlocks - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceTimeBlocks - execute delete: %v", ErrExecQuery, err)
	}

	if len(blocks) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("time_blocks").
		Columns(
			"config_id",
			"name",
			"days",
			"start_time",
			"end_time",
			"duration_hours",
			"half_hour_break",
			"max_events_per_block",
			"one_reservation_per_day",
			"position",
		)

	for position, block := range blocks {
		days := make(pq.Int64Array, len(block.Days))
		for i, d := range block.Days {
			days[i] = int64(d)
		}

		insertBuilder = insertBuilder.Values(
			configID,
			block.Name,
			days,
			block.StartTime,
			block.EndTime,
			block.DurationHours,
			block.HalfHourBreak,
			block.MaxEventsPerBlock,
			block.OneReservationPerDay,
			position,
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceTimeBlocks - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceTimeBlocks - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) replaceRestDays(ctx context.Context, configID int64, restDays []domain.RestDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rest_days").
		Where(squirrel.Eq{"config_id": configID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceRestDays - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceRestDays - execute delete: %v", ErrExecQuery, err)
	}

	if len(restDays) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("rest_days").
		Columns("config_id", "day", "fee", "can_be_released")

	for _, rd := range restDays {
		insertBuilder = insertBuilder.Values(configID, rd.Day, rd.Fee, rd.CanBeReleased)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceRestDays - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceRestDays - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
