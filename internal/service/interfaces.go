package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindshelter/pkg/entity"
)

type LoginRequest struct {
	Email    string `validate:"required,email,max=120"`
	FullName string `validate:"max=100"`
}

type UserServiceI interface {
	// Finds user by email, creating them (with default preferences) on
	// first login. Returns user's data with ID
	Login(ctx context.Context, req *LoginRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// EnrollResult is what the client needs to get into the lobby.
type EnrollResult struct {
	SessionID     uuid.UUID `json:"session_id"`
	RoomCode      string    `json:"room_code"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

type MatchmakerServiceI interface {
	// Joins the user into a scheduled session of the realm with a free
	// spot, creating a fresh session when none exists. Joining the same
	// session twice is idempotent
	Enroll(ctx context.Context, userID, realmID uuid.UUID, preMood *int) (*EnrollResult, error)
	// Lists sessions the user joined, newest first
	UserSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Session, error)
}

type RealmsServiceI interface {
	List(ctx context.Context) ([]*entity.Realm, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Realm, error)
	// Generates three figurative prompts for the realm and caches them
	// on the realm row
	GenerateMetaphors(ctx context.Context, realmID uuid.UUID) ([]entity.Metaphor, error)
	// Generates one reflective icebreaker for the chosen metaphor and
	// appends it to the realm's cached prompt list
	GenerateIcebreaker(ctx context.Context, realmID uuid.UUID, metaphorText string) (string, error)
}

type MoodCheckinRequest struct {
	MoodScore int    `validate:"required,min=1,max=10"`
	FocusArea string `validate:"required,alphanum_underscore,max=50"`
	Notes     string `validate:"max=2000"`
}

type MoodServiceI interface {
	// Appends one check-in entry to the log
	Append(ctx context.Context, userID uuid.UUID, req *MoodCheckinRequest) (*entity.MoodEntry, error)
	// Provides user's entries from since onward
	QueryWindow(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.MoodEntry, error)
}

type CompletionRequest struct {
	PostMood int `validate:"required,min=1,max=10"`
	Rating   int `validate:"required,min=1,max=5"`
}

type ProgressServiceI interface {
	// Advances the user's streak for today's check-in and awards any new
	// badges. Called once per enrollment
	RecordCheckin(ctx context.Context, userID uuid.UUID) (*entity.Progress, error)
	// Writes post-session mood and rating, awarding mood_improver when
	// the mood went up
	RecordCompletion(ctx context.Context, sessionID, userID uuid.UUID, req *CompletionRequest) error
	// Returns the user's progress record, zero-valued when absent
	Get(ctx context.Context, userID uuid.UUID) (*entity.Progress, error)
	// Averages mood entries over the trailing window, partitioned by
	// focus-area category
	Summarize(ctx context.Context, userID uuid.UUID, windowDays int) (*entity.TrendSummary, error)
}

type UpdatePreferencesRequest struct {
	UserType              *string  `validate:"omitempty,alphanum_underscore,max=50"`
	SubscriptionType      *string  `validate:"omitempty,max=20"`
	AmbientSoundsEnabled  *bool    ``
	Timezone              *string  `validate:"omitempty,max=50"`
	PreferredSessionTimes []string `validate:"omitempty,dive,max=20"`
}

type PreferencesServiceI interface {
	// Partial upsert: only fields present in the request change
	Update(ctx context.Context, userID uuid.UUID, req *UpdatePreferencesRequest) (*entity.Preferences, error)
}
