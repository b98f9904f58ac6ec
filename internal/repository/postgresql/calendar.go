package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// calendarRepositoryImpl stores a single settings row plus a holidays table.
// The garage has exactly one work calendar.
type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.SettingsRepository {
	return &calendarRepositoryImpl{db: db}
}

func (c *calendarRepositoryImpl) loadHolidays(ctx context.Context, q database.Querier) ([]calendar.Holiday, error) {
	rows, err := q.Query(ctx, `SELECT date, name FROM calendar_holidays ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// Get implements calendar.SettingsRepository.
func (c *calendarRepositoryImpl) Get(ctx context.Context) (calendar.Settings, error) {
	q := GetQuerier(ctx, c.db)

	var settings calendar.Settings
	var weekdays []int
	err := q.QueryRow(ctx, `SELECT id, working_weekdays FROM calendar_settings LIMIT 1`).
		Scan(&settings.ID, &weekdays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Settings{}, calendar.ErrSettingsNotFound
		}
		return calendar.Settings{}, err
	}
	settings.WorkingWeekdays = calendar.WeekdaysFromInts(weekdays)

	settings.Holidays, err = c.loadHolidays(ctx, q)
	if err != nil {
		return calendar.Settings{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	return settings, nil
}

// UpsertWeekdays implements calendar.SettingsRepository.
func (c *calendarRepositoryImpl) UpsertWeekdays(ctx context.Context, weekdays []time.Weekday) (calendar.Settings, error) {
	q := GetQuerier(ctx, c.db)

	values := make([]int, 0, len(weekdays))
	for _, w := range weekdays {
		values = append(values, int(w))
	}

	// Single-row table keyed on a constant ID.
	query := `
		INSERT INTO calendar_settings (id, working_weekdays)
		VALUES ('default', $1)
		ON CONFLICT (id) DO UPDATE SET working_weekdays = EXCLUDED.working_weekdays, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, values); err != nil {
		return calendar.Settings{}, err
	}

	return c.Get(ctx)
}

// AddHoliday implements calendar.SettingsRepository.
func (c *calendarRepositoryImpl) AddHoliday(ctx context.Context, holiday calendar.Holiday) error {
	q := GetQuerier(ctx, c.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM calendar_holidays WHERE date = $1)`,
		holiday.Date,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check holiday date: %w", err)
	}
	if exists {
		return calendar.ErrDuplicateHoliday
	}

	_, err = q.Exec(ctx,
		`INSERT INTO calendar_holidays (date, name) VALUES ($1, $2)`,
		holiday.Date, holiday.Name,
	)
	return err
}

// RemoveHoliday implements calendar.SettingsRepository.
func (c *calendarRepositoryImpl) RemoveHoliday(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM calendar_holidays WHERE date = $1`, date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}
