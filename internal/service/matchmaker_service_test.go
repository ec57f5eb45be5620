package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/internal/repository/mocks"
	"github.com/limbo/mindshelter/internal/service"
	"github.com/limbo/mindshelter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchmakerMocks(t *testing.T) (*mocks.MockRealmsRepositoryI, *mocks.MockSessionsRepositoryI, *service.MatchmakerService) {
	ctrl := gomock.NewController(t)
	realmsRepo := mocks.NewMockRealmsRepositoryI(ctrl)
	sessionsRepo := mocks.NewMockSessionsRepositoryI(ctrl)
	return realmsRepo, sessionsRepo, service.NewMatchmakerService(realmsRepo, sessionsRepo)
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	realmID := uuid.New()
	realm := &entity.Realm{ID: realmID, Name: "Calm Mind", Category: "anxiety"}
	preMood := 4
	openSession := &entity.Session{
		ID:            uuid.New(),
		RealmID:       realmID,
		ScheduledTime: time.Now().UTC().Add(time.Minute),
		Status:        entity.SessionScheduled,
		RoomCode:      "QWERTY12",
	}
	participation := &entity.Participation{
		ID:             uuid.New(),
		SessionID:      openSession.ID,
		UserID:         userID,
		PreSessionMood: &preMood,
	}

	t.Run("joins session with a free spot", func(t *testing.T) {
		realmsRepo, sessionsRepo, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(realm, nil)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(openSession, nil)
		sessionsRepo.EXPECT().AddParticipant(ctx, openSession.ID, userID, &preMood).Return(participation, nil)
		result, err := s.Enroll(ctx, userID, realmID, &preMood)
		require.NoError(t, err)
		assert.Equal(t, openSession.ID, result.SessionID)
		assert.Equal(t, openSession.RoomCode, result.RoomCode)
		assert.Equal(t, openSession.ScheduledTime, result.ScheduledTime)
	})
	t.Run("joining twice is idempotent", func(t *testing.T) {
		realmsRepo, sessionsRepo, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(realm, nil)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(openSession, nil)
		sessionsRepo.EXPECT().AddParticipant(ctx, openSession.ID, userID, &preMood).
			Return(nil, errorvalues.ErrAlreadyJoined)
		result, err := s.Enroll(ctx, userID, realmID, &preMood)
		require.NoError(t, err)
		assert.Equal(t, openSession.ID, result.SessionID)
	})
	t.Run("creates fresh session when none joinable", func(t *testing.T) {
		realmsRepo, sessionsRepo, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(realm, nil)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(nil, nil)
		sessionsRepo.EXPECT().RoomCodeExists(ctx, gomock.Any()).Return(false, nil)
		var createdID uuid.UUID
		sessionsRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, session *entity.Session) error {
				assert.Equal(t, realmID, session.RealmID)
				assert.Len(t, session.RoomCode, 8)
				for _, c := range session.RoomCode {
					assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", string(c))
				}
				assert.True(t, session.ScheduledTime.After(time.Now().UTC()))
				session.ID = uuid.New()
				createdID = session.ID
				return nil
			})
		sessionsRepo.EXPECT().AddParticipant(ctx, gomock.Any(), userID, &preMood).
			DoAndReturn(func(_ context.Context, sessionID, _ uuid.UUID, _ *int) (*entity.Participation, error) {
				assert.Equal(t, createdID, sessionID)
				return participation, nil
			})
		result, err := s.Enroll(ctx, userID, realmID, &preMood)
		require.NoError(t, err)
		assert.Equal(t, createdID, result.SessionID)
	})
	t.Run("lost race for last spot retries the search", func(t *testing.T) {
		realmsRepo, sessionsRepo, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(realm, nil)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(openSession, nil)
		sessionsRepo.EXPECT().AddParticipant(ctx, openSession.ID, userID, &preMood).
			Return(nil, errorvalues.ErrSessionFull)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(nil, nil)
		sessionsRepo.EXPECT().RoomCodeExists(ctx, gomock.Any()).Return(false, nil)
		sessionsRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, session *entity.Session) error {
				session.ID = uuid.New()
				return nil
			})
		sessionsRepo.EXPECT().AddParticipant(ctx, gomock.Any(), userID, &preMood).Return(participation, nil)
		_, err := s.Enroll(ctx, userID, realmID, &preMood)
		assert.NoError(t, err)
	})
	t.Run("room code collision retries with a new code", func(t *testing.T) {
		realmsRepo, sessionsRepo, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(realm, nil)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(nil, nil)
		sessionsRepo.EXPECT().RoomCodeExists(ctx, gomock.Any()).Return(true, nil)
		sessionsRepo.EXPECT().RoomCodeExists(ctx, gomock.Any()).Return(false, nil)
		sessionsRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, session *entity.Session) error {
				session.ID = uuid.New()
				return nil
			})
		sessionsRepo.EXPECT().AddParticipant(ctx, gomock.Any(), userID, nil).Return(participation, nil)
		_, err := s.Enroll(ctx, userID, realmID, nil)
		assert.NoError(t, err)
	})
	t.Run("realm not found", func(t *testing.T) {
		realmsRepo, _, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(nil, errorvalues.ErrRealmNotFound)
		_, err := s.Enroll(ctx, userID, realmID, nil)
		assert.ErrorIs(t, err, errorvalues.ErrRealmNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		realmsRepo, sessionsRepo, s := newMatchmakerMocks(t)
		realmsRepo.EXPECT().GetByID(ctx, realmID).Return(realm, nil)
		sessionsRepo.EXPECT().FindJoinable(ctx, realmID, gomock.Any()).Return(nil, errors.New("db error"))
		_, err := s.Enroll(ctx, userID, realmID, nil)
		assert.Error(t, err)
	})
}

func TestUserSessions(t *testing.T) {
	ctx := context.Background()
	sessions := []*entity.Session{
		{ID: uuid.New(), RoomCode: "AAAA1111"},
		{ID: uuid.New(), RoomCode: "BBBB2222"},
	}
	t.Run("provided", func(t *testing.T) {
		_, sessionsRepo, s := newMatchmakerMocks(t)
		sessionsRepo.EXPECT().ListByUser(ctx, userID, 10, 0).Return(sessions, nil)
		result, err := s.UserSessions(ctx, userID, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, sessions, result)
	})
	t.Run("db error", func(t *testing.T) {
		_, sessionsRepo, s := newMatchmakerMocks(t)
		sessionsRepo.EXPECT().ListByUser(ctx, userID, 10, 0).Return(nil, errors.New("db error"))
		_, err := s.UserSessions(ctx, userID, 10, 0)
		assert.Error(t, err)
	})
}

func TestMatchmakerIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	usersRepo := repository.NewUsersRepo(dbCfg)
	realmsRepo := repository.NewRealmsRepo(dbCfg)
	sessionsRepo := repository.NewSessionsRepo(dbCfg)
	s := service.NewMatchmakerService(realmsRepo, sessionsRepo)
	ctx := context.Background()

	realm := &entity.Realm{
		Name:        "Calm Mind",
		Description: "A space to quiet racing thoughts",
		Category:    "anxiety",
	}
	require.NoError(t, realmsRepo.Create(ctx, realm))
	users := make([]*entity.User, 0, entity.SessionCapacity+1)
	for i := 0; i < entity.SessionCapacity+1; i++ {
		u := &entity.User{Email: uuid.NewString() + "@example.edu", FullName: "Student"}
		require.NoError(t, usersRepo.Create(ctx, u))
		users = append(users, u)
	}

	var firstSession uuid.UUID
	t.Run("first user opens a session", func(t *testing.T) {
		result, err := s.Enroll(ctx, users[0].ID, realm.ID, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, result.RoomCode)
		firstSession = result.SessionID
	})
	t.Run("re-enrolling returns the existing spot", func(t *testing.T) {
		result, err := s.Enroll(ctx, users[0].ID, realm.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, firstSession, result.SessionID)
	})
	t.Run("next users fill the same session", func(t *testing.T) {
		for _, u := range users[1:entity.SessionCapacity] {
			result, err := s.Enroll(ctx, u.ID, realm.ID, nil)
			require.NoError(t, err)
			assert.Equal(t, firstSession, result.SessionID)
		}
	})
	t.Run("sixth user gets a fresh session", func(t *testing.T) {
		result, err := s.Enroll(ctx, users[entity.SessionCapacity].ID, realm.ID, nil)
		require.NoError(t, err)
		assert.NotEqual(t, firstSession, result.SessionID)
	})
	t.Run("unknown realm", func(t *testing.T) {
		_, err := s.Enroll(ctx, users[0].ID, uuid.New(), nil)
		assert.ErrorIs(t, err, errorvalues.ErrRealmNotFound)
	})
	t.Run("user sessions listed", func(t *testing.T) {
		sessions, err := s.UserSessions(ctx, users[0].ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, len(sessions))
		assert.Equal(t, firstSession, sessions[0].ID)
	})
}
