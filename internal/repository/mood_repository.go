package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/pkg/cleanup"
	"github.com/limbo/mindshelter/pkg/entity"
)

type MoodRepository struct {
	conn PgConnection
}

func NewMoodRepo(cfg DBConfig) *MoodRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for moodRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for moodRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MoodRepository{
		conn: pool,
	}
}

func NewMoodRepoWithConn(conn PgConnection) *MoodRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for moodRepo: " + err.Error())
	}
	return &MoodRepository{
		conn: conn,
	}
}

func (mr *MoodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	if entry == nil {
		return errors.New("mood entry is nil")
	}
	row := mr.conn.QueryRow(ctx,
		`INSERT INTO mood_entries (user_id, mood_score, focus_area, notes) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		entry.UserID,
		entry.MoodScore,
		entry.FocusArea,
		entry.Notes,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating mood entry error: " + err.Error())
	}
	return nil
}

func (mr *MoodRepository) GetByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.MoodEntry, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT id, user_id, mood_score, focus_area, COALESCE(notes, ''), created_at
		FROM mood_entries WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at;`,
		userID,
		since,
	)
	if err != nil {
		return nil, errors.New("getting mood entries error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.MoodEntry, 0)
	for rows.Next() {
		entry := entity.MoodEntry{}
		err = rows.Scan(&entry.ID, &entry.UserID, &entry.MoodScore, &entry.FocusArea, &entry.Notes, &entry.CreatedAt)
		if err != nil {
			return nil, errors.New("mood entry row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected mood entry rows error: " + rows.Err().Error())
	}
	return result, nil
}
