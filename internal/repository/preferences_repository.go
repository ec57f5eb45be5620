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

type PreferencesRepository struct {
	conn PgConnection
}

func NewPreferencesRepo(cfg DBConfig) *PreferencesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for preferencesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for preferencesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PreferencesRepository{
		conn: pool,
	}
}

func NewPreferencesRepoWithConn(conn PgConnection) *PreferencesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for preferencesRepo: " + err.Error())
	}
	return &PreferencesRepository{
		conn: conn,
	}
}

// GetByUserID returns (nil, nil) when the user has no preferences row yet.
func (pr *PreferencesRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error) {
	var prefs entity.Preferences
	row := pr.conn.QueryRow(ctx,
		`SELECT id, user_id, user_type, subscription_type, ambient_sounds_enabled, completed_sessions,
			COALESCE(timezone, ''), preferred_session_times
		FROM user_preferences WHERE user_id = $1;`,
		userID,
	)
	err := row.Scan(&prefs.ID, &prefs.UserID, &prefs.UserType, &prefs.SubscriptionType,
		&prefs.AmbientSoundsEnabled, &prefs.CompletedSessions, &prefs.Timezone, &prefs.PreferredSessionTimes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting preferences error: " + err.Error())
	}
	return &prefs, nil
}

func (pr *PreferencesRepository) Upsert(ctx context.Context, prefs *entity.Preferences) error {
	if prefs == nil {
		return errors.New("preferences is nil")
	}
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO user_preferences (user_id, user_type, subscription_type, ambient_sounds_enabled,
			completed_sessions, timezone, preferred_session_times)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			user_type = EXCLUDED.user_type,
			subscription_type = EXCLUDED.subscription_type,
			ambient_sounds_enabled = EXCLUDED.ambient_sounds_enabled,
			completed_sessions = EXCLUDED.completed_sessions,
			timezone = EXCLUDED.timezone,
			preferred_session_times = EXCLUDED.preferred_session_times
		RETURNING id;`,
		prefs.UserID,
		prefs.UserType,
		prefs.SubscriptionType,
		prefs.AmbientSoundsEnabled,
		prefs.CompletedSessions,
		prefs.Timezone,
		prefs.PreferredSessionTimes,
	)
	if err := row.Scan(&prefs.ID); err != nil {
		return errors.New("upserting preferences error: " + err.Error())
	}
	return nil
}
