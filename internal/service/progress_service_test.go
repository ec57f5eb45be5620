package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository/mocks"
	"github.com/limbo/mindshelter/internal/service"
	"github.com/limbo/mindshelter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressMocks(t *testing.T) (*mocks.MockProgressRepositoryI, *mocks.MockSessionsRepositoryI, *mocks.MockMoodRepositoryI, *service.ProgressService) {
	ctrl := gomock.NewController(t)
	progressRepo := mocks.NewMockProgressRepositoryI(ctrl)
	sessionsRepo := mocks.NewMockSessionsRepositoryI(ctrl)
	moodRepo := mocks.NewMockMoodRepositoryI(ctrl)
	return progressRepo, sessionsRepo, moodRepo, service.NewProgressService(progressRepo, sessionsRepo, moodRepo)
}

func daysAgo(n int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, -n)
	return &d
}

func TestRecordCheckin(t *testing.T) {
	ctx := context.Background()

	t.Run("first ever check-in", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		progress, err := s.RecordCheckin(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.CurrentStreak)
		assert.Equal(t, 1, progress.LongestStreak)
		assert.Equal(t, 1, progress.TotalSessions)
		assert.Contains(t, progress.Badges, service.BadgeFirstSession)
	})
	t.Run("next day extends the streak", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{
			UserID:          userID,
			CurrentStreak:   3,
			LongestStreak:   5,
			TotalSessions:   8,
			Badges:          []string{service.BadgeFirstSession},
			LastSessionDate: daysAgo(1),
		}, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		progress, err := s.RecordCheckin(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 4, progress.CurrentStreak)
		assert.Equal(t, 5, progress.LongestStreak)
		assert.Equal(t, 9, progress.TotalSessions)
	})
	t.Run("missed days reset the streak", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{
			UserID:          userID,
			CurrentStreak:   12,
			LongestStreak:   12,
			TotalSessions:   30,
			LastSessionDate: daysAgo(3),
		}, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		progress, err := s.RecordCheckin(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.CurrentStreak)
		assert.Equal(t, 12, progress.LongestStreak)
	})
	t.Run("same day leaves the streak unchanged", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{
			UserID:          userID,
			CurrentStreak:   4,
			LongestStreak:   6,
			TotalSessions:   10,
			LastSessionDate: daysAgo(0),
		}, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		progress, err := s.RecordCheckin(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 4, progress.CurrentStreak)
		assert.Equal(t, 11, progress.TotalSessions)
	})
	t.Run("seventh day awards the streak badge", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{
			UserID:          userID,
			CurrentStreak:   6,
			LongestStreak:   6,
			TotalSessions:   6,
			Badges:          []string{service.BadgeFirstSession},
			LastSessionDate: daysAgo(1),
		}, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		progress, err := s.RecordCheckin(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 7, progress.CurrentStreak)
		assert.Contains(t, progress.Badges, service.BadgeSevenDayStreak)
		assert.NotContains(t, progress.Badges, service.BadgeMonthStreak)
	})
	t.Run("badges never duplicate", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{
			UserID:          userID,
			CurrentStreak:   8,
			LongestStreak:   8,
			TotalSessions:   20,
			Badges:          []string{service.BadgeFirstSession, service.BadgeSevenDayStreak},
			LastSessionDate: daysAgo(1),
		}, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		progress, err := s.RecordCheckin(ctx, userID)
		require.NoError(t, err)
		count := 0
		for _, b := range progress.Badges {
			if b == service.BadgeSevenDayStreak {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
	t.Run("db error", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, errors.New("db error"))
		_, err := s.RecordCheckin(ctx, userID)
		assert.Error(t, err)
	})
}

func TestRecordCompletion(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	preMood := 3
	req := &service.CompletionRequest{PostMood: 7, Rating: 5}

	t.Run("mood went up, badge awarded", func(t *testing.T) {
		progressRepo, sessionsRepo, _, s := newProgressMocks(t)
		sessionsRepo.EXPECT().GetParticipant(ctx, sessionID, userID).Return(&entity.Participation{
			SessionID:      sessionID,
			UserID:         userID,
			PreSessionMood: &preMood,
		}, nil)
		sessionsRepo.EXPECT().CompleteParticipation(ctx, sessionID, userID, 7, 5).Return(nil)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{UserID: userID}, nil)
		progressRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, progress *entity.Progress) error {
				assert.Contains(t, progress.Badges, service.BadgeMoodImprover)
				return nil
			})
		err := s.RecordCompletion(ctx, sessionID, userID, req)
		assert.NoError(t, err)
	})
	t.Run("badge already earned, nothing to store", func(t *testing.T) {
		progressRepo, sessionsRepo, _, s := newProgressMocks(t)
		sessionsRepo.EXPECT().GetParticipant(ctx, sessionID, userID).Return(&entity.Participation{
			SessionID:      sessionID,
			UserID:         userID,
			PreSessionMood: &preMood,
		}, nil)
		sessionsRepo.EXPECT().CompleteParticipation(ctx, sessionID, userID, 7, 5).Return(nil)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Progress{
			UserID: userID,
			Badges: []string{service.BadgeMoodImprover},
		}, nil)
		err := s.RecordCompletion(ctx, sessionID, userID, req)
		assert.NoError(t, err)
	})
	t.Run("no pre-session mood, no badge check", func(t *testing.T) {
		_, sessionsRepo, _, s := newProgressMocks(t)
		sessionsRepo.EXPECT().GetParticipant(ctx, sessionID, userID).Return(&entity.Participation{
			SessionID: sessionID,
			UserID:    userID,
		}, nil)
		sessionsRepo.EXPECT().CompleteParticipation(ctx, sessionID, userID, 7, 5).Return(nil)
		err := s.RecordCompletion(ctx, sessionID, userID, req)
		assert.NoError(t, err)
	})
	t.Run("mood went down, no badge", func(t *testing.T) {
		_, sessionsRepo, _, s := newProgressMocks(t)
		high := 9
		sessionsRepo.EXPECT().GetParticipant(ctx, sessionID, userID).Return(&entity.Participation{
			SessionID:      sessionID,
			UserID:         userID,
			PreSessionMood: &high,
		}, nil)
		sessionsRepo.EXPECT().CompleteParticipation(ctx, sessionID, userID, 7, 5).Return(nil)
		err := s.RecordCompletion(ctx, sessionID, userID, req)
		assert.NoError(t, err)
	})
	t.Run("not a participant", func(t *testing.T) {
		_, sessionsRepo, _, s := newProgressMocks(t)
		sessionsRepo.EXPECT().GetParticipant(ctx, sessionID, userID).
			Return(nil, errorvalues.ErrParticipationNotFound)
		err := s.RecordCompletion(ctx, sessionID, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrParticipationNotFound)
	})
	t.Run("invalid rating", func(t *testing.T) {
		_, _, _, s := newProgressMocks(t)
		err := s.RecordCompletion(ctx, sessionID, userID, &service.CompletionRequest{
			PostMood: 7,
			Rating:   9,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestGetProgress(t *testing.T) {
	ctx := context.Background()
	t.Run("existing record", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		stored := &entity.Progress{
			UserID:        userID,
			CurrentStreak: 5,
			Badges:        []string{service.BadgeFirstSession},
		}
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(stored, nil)
		progress, err := s.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, *stored, *progress)
	})
	t.Run("absent record comes back zero-valued", func(t *testing.T) {
		progressRepo, _, _, s := newProgressMocks(t)
		progressRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)
		progress, err := s.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, progress.CurrentStreak)
		assert.NotNil(t, progress.Badges)
		assert.Empty(t, progress.Badges)
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	entries := []entity.MoodEntry{
		{UserID: userID, MoodScore: 4, FocusArea: "anxiety"},
		{UserID: userID, MoodScore: 6, FocusArea: "worry"},
		{UserID: userID, MoodScore: 8, FocusArea: "falling_asleep"},
		{UserID: userID, MoodScore: 2, FocusArea: "workload"},
	}
	t.Run("averages per category", func(t *testing.T) {
		_, _, moodRepo, s := newProgressMocks(t)
		moodRepo.EXPECT().GetByUserSince(ctx, userID, gomock.Any()).Return(entries, nil)
		summary, err := s.Summarize(ctx, userID, 7)
		require.NoError(t, err)
		require.NotNil(t, summary.RecentMoodAvg)
		assert.InDelta(t, 5.0, *summary.RecentMoodAvg, 0.001)
		require.NotNil(t, summary.AnxietyAvg)
		assert.InDelta(t, 5.0, *summary.AnxietyAvg, 0.001)
		require.NotNil(t, summary.SleepAvg)
		assert.InDelta(t, 8.0, *summary.SleepAvg, 0.001)
		require.NotNil(t, summary.WorkStressAvg)
		assert.InDelta(t, 2.0, *summary.WorkStressAvg, 0.001)
	})
	t.Run("empty category stays nil", func(t *testing.T) {
		_, _, moodRepo, s := newProgressMocks(t)
		moodRepo.EXPECT().GetByUserSince(ctx, userID, gomock.Any()).Return([]entity.MoodEntry{
			{UserID: userID, MoodScore: 7, FocusArea: "gratitude"},
		}, nil)
		summary, err := s.Summarize(ctx, userID, 7)
		require.NoError(t, err)
		require.NotNil(t, summary.RecentMoodAvg)
		assert.Nil(t, summary.AnxietyAvg)
		assert.Nil(t, summary.SleepAvg)
		assert.Nil(t, summary.WorkStressAvg)
	})
	t.Run("no entries at all", func(t *testing.T) {
		_, _, moodRepo, s := newProgressMocks(t)
		moodRepo.EXPECT().GetByUserSince(ctx, userID, gomock.Any()).Return(nil, nil)
		summary, err := s.Summarize(ctx, userID, 7)
		require.NoError(t, err)
		assert.Nil(t, summary.RecentMoodAvg)
	})
	t.Run("non-positive window falls back to a week", func(t *testing.T) {
		_, _, moodRepo, s := newProgressMocks(t)
		moodRepo.EXPECT().GetByUserSince(ctx, userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, since time.Time) ([]entity.MoodEntry, error) {
				weekAgo := time.Now().UTC().AddDate(0, 0, -7)
				assert.WithinDuration(t, weekAgo, since, time.Minute)
				return nil, nil
			})
		_, err := s.Summarize(ctx, userID, 0)
		assert.NoError(t, err)
	})
}
