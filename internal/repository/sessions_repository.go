package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/pkg/cleanup"
	"github.com/limbo/mindshelter/pkg/entity"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(cfg DBConfig) *SessionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for sessionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SessionsRepository{
		conn: pool,
	}
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	return &SessionsRepository{
		conn: conn,
	}
}

// FindJoinable returns (nil, nil) when no session of the realm has a free
// spot. The participant count is always a live subquery, never a cached
// counter.
func (sr *SessionsRepository) FindJoinable(ctx context.Context, realmID uuid.UUID, now time.Time) (*entity.Session, error) {
	var session entity.Session
	row := sr.conn.QueryRow(ctx,
		`SELECT s.id, s.realm_id, s.scheduled_time, s.status, s.duration_minutes, s.room_code, s.created_at
		FROM sessions s
		WHERE s.realm_id = $1 AND s.status = 'scheduled' AND s.scheduled_time > $2
			AND (SELECT COUNT(*) FROM session_participants p WHERE p.session_id = s.id) < $3
		ORDER BY s.scheduled_time
		LIMIT 1;`,
		realmID,
		now,
		entity.SessionCapacity,
	)
	err := row.Scan(&session.ID, &session.RealmID, &session.ScheduledTime, &session.Status,
		&session.DurationMinutes, &session.RoomCode, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("searching joinable session error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	if session.DurationMinutes == 0 {
		session.DurationMinutes = 15
	}
	session.Status = entity.SessionScheduled
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO sessions (realm_id, scheduled_time, duration_minutes, room_code) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		session.RealmID,
		session.ScheduledTime,
		session.DurationMinutes,
		session.RoomCode,
	)
	if err := row.Scan(&session.ID, &session.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrRoomCodeExists
			// FK violation
			case "23503":
				return errorvalues.ErrRealmNotFound
			}
		}
		return errors.New("creating session db error: " + err.Error())
	}
	return nil
}

// AddParticipant joins the user inside one transaction. The session row is
// locked with FOR UPDATE, joinability and the live participant count are
// re-checked under the lock, then the row is inserted. Concurrent joins on
// the capacity boundary serialize on the lock, so the count can never pass
// SessionCapacity.
func (sr *SessionsRepository) AddParticipant(ctx context.Context, sessionID, userID uuid.UUID, preMood *int) (*entity.Participation, error) {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting join transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var status entity.SessionStatus
	var scheduledTime time.Time
	row := tx.QueryRow(ctx, `SELECT status, scheduled_time FROM sessions WHERE id = $1 FOR UPDATE;`, sessionID)
	if err = row.Scan(&status, &scheduledTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("locking session error: " + err.Error())
	}
	if status != entity.SessionScheduled || !scheduledTime.After(time.Now().UTC()) {
		return nil, errorvalues.ErrSessionNotJoinable
	}

	var count int
	row = tx.QueryRow(ctx, `SELECT COUNT(*) FROM session_participants WHERE session_id = $1;`, sessionID)
	if err = row.Scan(&count); err != nil {
		return nil, errors.New("counting participants error: " + err.Error())
	}
	if count >= entity.SessionCapacity {
		return nil, errorvalues.ErrSessionFull
	}

	participation := entity.Participation{
		SessionID:      sessionID,
		UserID:         userID,
		PreSessionMood: preMood,
	}
	row = tx.QueryRow(ctx,
		`INSERT INTO session_participants (session_id, user_id, pre_session_mood) VALUES ($1, $2, $3) RETURNING id, joined_at;`,
		sessionID,
		userID,
		preMood,
	)
	if err = row.Scan(&participation.ID, &participation.JoinedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (session_id, user_id)
			case "23505":
				return nil, errorvalues.ErrAlreadyJoined
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("inserting participant error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing join transaction error: " + err.Error())
	}
	return &participation, nil
}

func (sr *SessionsRepository) GetParticipant(ctx context.Context, sessionID, userID uuid.UUID) (*entity.Participation, error) {
	var participation entity.Participation
	row := sr.conn.QueryRow(ctx,
		`SELECT id, session_id, user_id, pre_session_mood, post_session_mood, session_rating, joined_at
		FROM session_participants WHERE session_id = $1 AND user_id = $2;`,
		sessionID,
		userID,
	)
	err := row.Scan(&participation.ID, &participation.SessionID, &participation.UserID,
		&participation.PreSessionMood, &participation.PostSessionMood, &participation.Rating, &participation.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrParticipationNotFound
		}
		return nil, errors.New("getting participant error: " + err.Error())
	}
	return &participation, nil
}

func (sr *SessionsRepository) CompleteParticipation(ctx context.Context, sessionID, userID uuid.UUID, postMood, rating int) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE session_participants SET post_session_mood = $1, session_rating = $2 WHERE session_id = $3 AND user_id = $4;`,
		postMood,
		rating,
		sessionID,
		userID,
	)
	if err != nil {
		return errors.New("completing participation error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrParticipationNotFound
	}
	return nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	session.ID = id
	row := sr.conn.QueryRow(ctx,
		`SELECT realm_id, scheduled_time, status, duration_minutes, room_code, created_at FROM sessions WHERE id = $1;`, id)
	err := row.Scan(&session.RealmID, &session.ScheduledTime, &session.Status,
		&session.DurationMinutes, &session.RoomCode, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Session, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT s.id, s.realm_id, s.scheduled_time, s.status, s.duration_minutes, s.room_code, s.created_at
		FROM sessions s JOIN session_participants p ON p.session_id = s.id
		WHERE p.user_id = $1 ORDER BY s.scheduled_time DESC LIMIT $2 OFFSET $3;`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("listing user sessions error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]*entity.Session, 0)
	for rows.Next() {
		s := entity.Session{}
		err = rows.Scan(&s.ID, &s.RealmID, &s.ScheduledTime, &s.Status, &s.DurationMinutes, &s.RoomCode, &s.CreatedAt)
		if err != nil {
			return nil, errors.New("session row parsing error: " + err.Error())
		}
		sessions = append(sessions, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected session rows error: " + rows.Err().Error())
	}
	return sessions, nil
}

func (sr *SessionsRepository) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	row := sr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sessions WHERE room_code = $1);`, code)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if room code exists error: " + err.Error())
	}
	return exists, nil
}
