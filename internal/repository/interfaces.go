package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/mindshelter/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type RealmsRepositoryI interface {
	// Creates new realm. Used by the seeder
	Create(ctx context.Context, realm *entity.Realm) error
	// Searches realm with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Realm, error)
	// Lists all realms
	List(ctx context.Context) ([]*entity.Realm, error)
	// Refreshes cached generated content for realm
	UpdateGeneratedContent(ctx context.Context, id uuid.UUID, metaphors []entity.Metaphor, icebreakers []string) error
	// Returns count of seeded realms
	Count(ctx context.Context) (int, error)
}

type SessionsRepositoryI interface {
	// Searches a scheduled future session of the realm with a free spot.
	// Participant count is taken live from session_participants.
	// Picks the earliest scheduled one for determinism
	FindJoinable(ctx context.Context, realmID uuid.UUID, now time.Time) (*entity.Session, error)
	// Creates new scheduled session
	Create(ctx context.Context, session *entity.Session) error
	// Adds user to session inside one transaction: the session row is
	// locked, joinability and live count are re-checked, then the
	// participant row is inserted
	AddParticipant(ctx context.Context, sessionID, userID uuid.UUID, preMood *int) (*entity.Participation, error)
	// Returns participation row of user in session
	GetParticipant(ctx context.Context, sessionID, userID uuid.UUID) (*entity.Participation, error)
	// Writes post-session mood and rating on the participation row
	CompleteParticipation(ctx context.Context, sessionID, userID uuid.UUID, postMood, rating int) error
	// Searches session with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Lists sessions the user joined, newest first
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Session, error)
	// Inspects if room code is already taken
	RoomCodeExists(ctx context.Context, code string) (bool, error)
}

type MoodRepositoryI interface {
	// Appends one check-in entry. Entries are never updated or deleted
	Create(ctx context.Context, entry *entity.MoodEntry) error
	// Provides user's entries from since onward, oldest first
	GetByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.MoodEntry, error)
}

type ProgressRepositoryI interface {
	// Returns progress row for user, ErrProgressNotFound-free: a missing
	// row comes back as nil without error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Progress, error)
	// Inserts or updates progress row for user
	Upsert(ctx context.Context, progress *entity.Progress) error
}

type PreferencesRepositoryI interface {
	// Returns preferences row for user; missing row comes back as nil
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error)
	// Inserts or updates preferences row for user
	Upsert(ctx context.Context, prefs *entity.Preferences) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
