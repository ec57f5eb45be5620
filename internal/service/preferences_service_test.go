package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository/mocks"
	"github.com/limbo/mindshelter/internal/service"
	"github.com/limbo/mindshelter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()
	userType := "young_professional"
	sounds := false

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefsRepo := mocks.NewMockPreferencesRepositoryI(ctrl)
		s := service.NewPreferencesService(prefsRepo)
		prefsRepo.EXPECT().GetByUserID(ctx, userID).Return(&entity.Preferences{
			UserID:               userID,
			UserType:             "university_student",
			SubscriptionType:     "premium",
			AmbientSoundsEnabled: true,
			Timezone:             "Europe/Berlin",
		}, nil)
		prefsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		prefs, err := s.Update(ctx, userID, &service.UpdatePreferencesRequest{
			UserType:             &userType,
			AmbientSoundsEnabled: &sounds,
		})
		require.NoError(t, err)
		assert.Equal(t, userType, prefs.UserType)
		assert.False(t, prefs.AmbientSoundsEnabled)
		assert.Equal(t, "premium", prefs.SubscriptionType)
		assert.Equal(t, "Europe/Berlin", prefs.Timezone)
	})
	t.Run("missing row starts from defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefsRepo := mocks.NewMockPreferencesRepositoryI(ctrl)
		s := service.NewPreferencesService(prefsRepo)
		prefsRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)
		prefsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		prefs, err := s.Update(ctx, userID, &service.UpdatePreferencesRequest{
			PreferredSessionTimes: []string{"morning", "evening"},
		})
		require.NoError(t, err)
		assert.Equal(t, "university_student", prefs.UserType)
		assert.Equal(t, []string{"morning", "evening"}, prefs.PreferredSessionTimes)
	})
	t.Run("bad user type tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := service.NewPreferencesService(mocks.NewMockPreferencesRepositoryI(ctrl))
		bad := "not a tag!"
		_, err := s.Update(ctx, userID, &service.UpdatePreferencesRequest{UserType: &bad})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("db error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefsRepo := mocks.NewMockPreferencesRepositoryI(ctrl)
		s := service.NewPreferencesService(prefsRepo)
		prefsRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, errors.New("db error"))
		_, err := s.Update(ctx, userID, &service.UpdatePreferencesRequest{UserType: &userType})
		assert.Error(t, err)
	})
}
