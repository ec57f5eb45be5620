package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type Realm struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	FocusOutcome      string     `json:"focus_outcome,omitempty"`
	ColorScheme       string     `json:"color_scheme,omitempty"`
	Metaphors         []Metaphor `json:"metaphors,omitempty"`
	IcebreakerPrompts []string   `json:"icebreaker_prompts,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Metaphor is one generated figurative prompt for a realm.
// Type is one of: metaphor, simile, personification.
type Metaphor struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// SessionCapacity is the max number of participants per session.
const SessionCapacity = 5

type Session struct {
	ID              uuid.UUID     `json:"id"`
	RealmID         uuid.UUID     `json:"realm_id"`
	ScheduledTime   time.Time     `json:"scheduled_time"`
	Status          SessionStatus `json:"status"`
	DurationMinutes int           `json:"duration_minutes"`
	RoomCode        string        `json:"room_code"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Participation links one user to one session. Mood fields stay nil until
// the user reports them; Rating stays nil until the session is completed.
type Participation struct {
	ID              uuid.UUID `json:"id"`
	SessionID       uuid.UUID `json:"session_id"`
	UserID          uuid.UUID `json:"uid"`
	PreSessionMood  *int      `json:"pre_session_mood,omitempty"`
	PostSessionMood *int      `json:"post_session_mood,omitempty"`
	Rating          *int      `json:"rating,omitempty"`
	JoinedAt        time.Time `json:"joined_at"`
}

type MoodEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	MoodScore int       `json:"mood_score"`
	FocusArea string    `json:"focus_area"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Preferences struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"uid"`
	UserType              string    `json:"user_type"`
	SubscriptionType      string    `json:"subscription_type"`
	AmbientSoundsEnabled  bool      `json:"ambient_sounds_enabled"`
	CompletedSessions     int       `json:"completed_sessions"`
	Timezone              string    `json:"timezone,omitempty"`
	PreferredSessionTimes []string  `json:"preferred_session_times,omitempty"`
}

type Progress struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"uid"`
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	TotalSessions   int        `json:"total_sessions"`
	Badges          []string   `json:"badges"`
	AnxietyTrend    *float64   `json:"anxiety_trend,omitempty"`
	SleepTrend      *float64   `json:"sleep_trend,omitempty"`
	WorkStressTrend *float64   `json:"work_stress_trend,omitempty"`
	LastSessionDate *time.Time `json:"last_session_date,omitempty"`
}

// TrendSummary holds trailing-window mood averages. A nil field means the
// user has no entries in that category for the window.
type TrendSummary struct {
	RecentMoodAvg *float64 `json:"recent_mood_avg,omitempty"`
	AnxietyAvg    *float64 `json:"anxiety_avg,omitempty"`
	SleepAvg      *float64 `json:"sleep_avg,omitempty"`
	WorkStressAvg *float64 `json:"work_stress_avg,omitempty"`
}
