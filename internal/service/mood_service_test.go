package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository/mocks"
	"github.com/limbo/mindshelter/internal/service"
	"github.com/limbo/mindshelter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCheckin(t *testing.T) {
	ctx := context.Background()
	req := &service.MoodCheckinRequest{
		MoodScore: 6,
		FocusArea: "falling_asleep",
		Notes:     "slept badly before the exam",
	}

	t.Run("appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moodRepo := mocks.NewMockMoodRepositoryI(ctrl)
		s := service.NewMoodService(moodRepo)
		moodRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *entity.MoodEntry) error {
				assert.Equal(t, userID, entry.UserID)
				assert.Equal(t, req.MoodScore, entry.MoodScore)
				assert.Equal(t, req.FocusArea, entry.FocusArea)
				entry.CreatedAt = time.Now()
				return nil
			})
		entry, err := s.Append(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, req.Notes, entry.Notes)
	})
	t.Run("score out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := service.NewMoodService(mocks.NewMockMoodRepositoryI(ctrl))
		_, err := s.Append(ctx, userID, &service.MoodCheckinRequest{
			MoodScore: 11,
			FocusArea: "anxiety",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("bad focus area tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := service.NewMoodService(mocks.NewMockMoodRepositoryI(ctrl))
		_, err := s.Append(ctx, userID, &service.MoodCheckinRequest{
			MoodScore: 5,
			FocusArea: "not a tag!",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unexist user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moodRepo := mocks.NewMockMoodRepositoryI(ctrl)
		s := service.NewMoodService(moodRepo)
		moodRepo.EXPECT().Create(ctx, gomock.Any()).Return(errorvalues.ErrUserNotFound)
		_, err := s.Append(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestQueryWindow(t *testing.T) {
	ctx := context.Background()
	since := time.Now().UTC().AddDate(0, 0, -7)
	t.Run("provided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moodRepo := mocks.NewMockMoodRepositoryI(ctrl)
		s := service.NewMoodService(moodRepo)
		entries := []entity.MoodEntry{{UserID: userID, MoodScore: 5, FocusArea: "anxiety"}}
		moodRepo.EXPECT().GetByUserSince(ctx, userID, since).Return(entries, nil)
		result, err := s.QueryWindow(ctx, userID, since)
		assert.NoError(t, err)
		assert.Equal(t, entries, result)
	})
	t.Run("db error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moodRepo := mocks.NewMockMoodRepositoryI(ctrl)
		s := service.NewMoodService(moodRepo)
		moodRepo.EXPECT().GetByUserSince(ctx, userID, since).Return(nil, errors.New("db error"))
		_, err := s.QueryWindow(ctx, userID, since)
		assert.Error(t, err)
	})
}
