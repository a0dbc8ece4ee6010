package events

import (
	"context"
	"database/sql"
	"errors"
)

const eventColumns = `id, name, type, level, duration_days, description, event_date, location, registrations, max_participants, prizes, organizer, contact, created_at, updated_at`

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all events ordered by date, then name.
func (r *PGRepo) List(ctx context.Context) ([]Event, error) {
	const query = `
SELECT ` + eventColumns + `
FROM events
ORDER BY event_date, name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID returns the event with the given id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Event, error) {
	const query = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	return e, err
}

// Create inserts a new event. The insert is skipped when another event
// already holds the name; callers see ErrDuplicateName.
func (r *PGRepo) Create(ctx context.Context, event Event) error {
	const query = `
INSERT INTO events (id, name, type, level, duration_days, description, event_date, location, registrations, max_participants, prizes, organizer, contact, created_at, updated_at)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
WHERE NOT EXISTS (SELECT 1 FROM events WHERE name = $2)`
	res, err := r.DB.ExecContext(ctx, query,
		event.ID, event.Name, event.Type, event.Level, event.DurationDays,
		event.Description, event.Date, event.Location,
		event.Registrations, event.MaxParticipants,
		event.Prizes, event.Organizer, event.Contact,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDuplicateName
	}
	return nil
}

// Update replaces an existing event.
func (r *PGRepo) Update(ctx context.Context, event Event) error {
	const query = `
UPDATE events
SET name = $2, type = $3, level = $4, duration_days = $5, description = $6,
    event_date = $7, location = $8, registrations = $9, max_participants = $10,
    prizes = $11, organizer = $12, contact = $13, updated_at = $14
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		event.ID, event.Name, event.Type, event.Level, event.DurationDays,
		event.Description, event.Date, event.Location,
		event.Registrations, event.MaxParticipants,
		event.Prizes, event.Organizer, event.Contact,
		event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an event.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementRegistrations bumps the registration counter atomically,
// respecting the participant cap when one is set.
func (r *PGRepo) IncrementRegistrations(ctx context.Context, id string) (Event, error) {
	const query = `
UPDATE events
SET registrations = registrations + 1, updated_at = now()
WHERE id = $1 AND (max_participants = 0 OR registrations < max_participants)
RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish a missing event from a full one.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return Event{}, getErr
		}
		return Event{}, ErrFull
	}
	return e, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var e Event
	var description, date, location, prizes, organizer, contact sql.NullString
	err := row.Scan(
		&e.ID, &e.Name, &e.Type, &e.Level, &e.DurationDays,
		&description, &date, &location,
		&e.Registrations, &e.MaxParticipants,
		&prizes, &organizer, &contact,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return Event{}, err
	}
	e.Description = description.String
	e.Date = date.String
	e.Location = location.String
	e.Prizes = prizes.String
	e.Organizer = organizer.String
	e.Contact = contact.String
	return e, nil
}
