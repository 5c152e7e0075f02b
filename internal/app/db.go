package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements EventStore and UserStore on Postgres.
type PGStore struct {
	DB *pgxpool.Pool
}

// NewPGStore wraps a connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{DB: pool}
}

// EnsureSchema creates the tables on first run. Statements run one at a time;
// pgx's extended protocol takes a single command per Exec.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT UNIQUE,
			password_hash TEXT NOT NULL DEFAULT '',
			google_sub    TEXT UNIQUE,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS journeys (
			id             TEXT PRIMARY KEY,
			user_id        TEXT NOT NULL,
			day            TEXT NOT NULL,
			start_time     TEXT NOT NULL,
			end_time       TEXT NOT NULL,
			name           TEXT NOT NULL,
			purpose        TEXT NOT NULL DEFAULT '',
			type           TEXT NOT NULL DEFAULT '',
			start_postcode TEXT NOT NULL,
			end_postcode   TEXT NOT NULL,
			destination    TEXT NOT NULL,
			miles          TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS journeys_user_idx ON journeys (user_id)`,
	}
	for _, q := range stmts {
		if _, err := s.DB.Exec(ctx, q); err != nil {
			return fmt.Errorf("%w: ensure schema: %v", ErrStoreUnavailable, err)
		}
	}
	return nil
}

// dayOrder sorts weekday names chronologically in SQL.
const dayOrder = `array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday'], day)`

func (s *PGStore) ListEvents(ctx context.Context, userID string) ([]Event, error) {
	q := `SELECT id,user_id,day,start_time,end_time,name,purpose,type,
	             start_postcode,end_postcode,destination,miles,created_at
	      FROM journeys WHERE user_id=$1
	      ORDER BY ` + dayOrder + `, start_time`
	rows, err := s.DB.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list journeys: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Day, &ev.StartTime, &ev.EndTime,
			&ev.Name, &ev.Purpose, &ev.Type, &ev.StartPostcode, &ev.EndPostcode,
			&ev.Destination, &ev.Miles, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan journey: %v", ErrStoreUnavailable, err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (s *PGStore) GetEvent(ctx context.Context, userID, id string) (*Event, error) {
	q := `SELECT id,user_id,day,start_time,end_time,name,purpose,type,
	             start_postcode,end_postcode,destination,miles,created_at
	      FROM journeys WHERE id=$1 AND user_id=$2`
	var ev Event
	err := s.DB.QueryRow(ctx, q, id, userID).Scan(&ev.ID, &ev.UserID, &ev.Day,
		&ev.StartTime, &ev.EndTime, &ev.Name, &ev.Purpose, &ev.Type,
		&ev.StartPostcode, &ev.EndPostcode, &ev.Destination, &ev.Miles, &ev.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get journey: %v", ErrStoreUnavailable, err)
	}
	return &ev, nil
}

func (s *PGStore) CreateEvent(ctx context.Context, ev *Event) (string, error) {
	ev.ID = uuid.New().String()
	ev.CreatedAt = time.Now().UTC()
	q := `INSERT INTO journeys
	      (id,user_id,day,start_time,end_time,name,purpose,type,
	       start_postcode,end_postcode,destination,miles,created_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := s.DB.Exec(ctx, q, ev.ID, ev.UserID, ev.Day, ev.StartTime, ev.EndTime,
		ev.Name, ev.Purpose, ev.Type, ev.StartPostcode, ev.EndPostcode,
		ev.Destination, ev.Miles, ev.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("%w: insert journey: %v", ErrStoreUnavailable, err)
	}
	return ev.ID, nil
}

func (s *PGStore) ReplaceEvent(ctx context.Context, id string, ev *Event) error {
	q := `UPDATE journeys
	      SET day=$1, start_time=$2, end_time=$3, name=$4, purpose=$5, type=$6,
	          start_postcode=$7, end_postcode=$8, destination=$9, miles=$10
	      WHERE id=$11 AND user_id=$12`
	tag, err := s.DB.Exec(ctx, q, ev.Day, ev.StartTime, ev.EndTime, ev.Name,
		ev.Purpose, ev.Type, ev.StartPostcode, ev.EndPostcode, ev.Destination,
		ev.Miles, id, ev.UserID)
	if err != nil {
		return fmt.Errorf("%w: replace journey: %v", ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	ev.ID = id
	return nil
}

func (s *PGStore) CreateUser(ctx context.Context, u *User) error {
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now().UTC()

	var existing string
	err := s.DB.QueryRow(ctx, `SELECT id FROM users WHERE email=$1`, u.Email).Scan(&existing)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: check email: %v", ErrStoreUnavailable, err)
	}

	_, err = s.DB.Exec(ctx,
		`INSERT INTO users (id,email,password_hash,created_at) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: insert user: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PGStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.DB.QueryRow(ctx,
		`SELECT id,email,password_hash,COALESCE(google_sub,''),created_at FROM users WHERE email=$1`,
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user: %v", ErrStoreUnavailable, err)
	}
	return &u, nil
}

func (s *PGStore) UpsertGoogleUser(ctx context.Context, sub, email string) (*User, error) {
	var u User
	err := s.DB.QueryRow(ctx,
		`SELECT id,email,password_hash,google_sub,created_at FROM users WHERE google_sub=$1`,
		sub).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: get google user: %v", ErrStoreUnavailable, err)
	}

	u = User{ID: uuid.New().String(), Email: email, GoogleSub: sub, CreatedAt: time.Now().UTC()}
	_, err = s.DB.Exec(ctx,
		`INSERT INTO users (id,email,google_sub,created_at) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Email, u.GoogleSub, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert google user: %v", ErrStoreUnavailable, err)
	}
	return &u, nil
}
