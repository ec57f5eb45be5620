package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/mindshelter/pkg/cleanup"
	"github.com/limbo/mindshelter/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

// GetByUserID returns (nil, nil) when the user has no progress row yet.
func (pr *ProgressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Progress, error) {
	var progress entity.Progress
	row := pr.conn.QueryRow(ctx,
		`SELECT id, user_id, current_streak, longest_streak, total_sessions, badges,
			anxiety_trend, sleep_trend, work_stress_trend, last_session_date
		FROM user_progress WHERE user_id = $1;`,
		userID,
	)
	err := row.Scan(&progress.ID, &progress.UserID, &progress.CurrentStreak, &progress.LongestStreak,
		&progress.TotalSessions, &progress.Badges, &progress.AnxietyTrend, &progress.SleepTrend,
		&progress.WorkStressTrend, &progress.LastSessionDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting progress error: " + err.Error())
	}
	return &progress, nil
}

func (pr *ProgressRepository) Upsert(ctx context.Context, progress *entity.Progress) error {
	if progress == nil {
		return errors.New("progress is nil")
	}
	if progress.Badges == nil {
		progress.Badges = []string{}
	}
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO user_progress (user_id, current_streak, longest_streak, total_sessions, badges,
			anxiety_trend, sleep_trend, work_stress_trend, last_session_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			total_sessions = EXCLUDED.total_sessions,
			badges = EXCLUDED.badges,
			anxiety_trend = EXCLUDED.anxiety_trend,
			sleep_trend = EXCLUDED.sleep_trend,
			work_stress_trend = EXCLUDED.work_stress_trend,
			last_session_date = EXCLUDED.last_session_date
		RETURNING id;`,
		progress.UserID,
		progress.CurrentStreak,
		progress.LongestStreak,
		progress.TotalSessions,
		progress.Badges,
		progress.AnxietyTrend,
		progress.SleepTrend,
		progress.WorkStressTrend,
		progress.LastSessionDate,
	)
	if err := row.Scan(&progress.ID); err != nil {
		return errors.New("upserting progress error: " + err.Error())
	}
	return nil
}
