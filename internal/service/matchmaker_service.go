package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
)

var (
	// Lead time between enrollment and session start
	sessionLeadTime = time.Minute * 2
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 8
	// Attempts before giving up on a join loop or a unique room code
	matchmakingRetries = 3
)

type MatchmakerService struct {
	realmsRepo   repository.RealmsRepositoryI
	sessionsRepo repository.SessionsRepositoryI
}

func NewMatchmakerService(realmsRepo repository.RealmsRepositoryI, sessionsRepo repository.SessionsRepositoryI) *MatchmakerService {
	if realmsRepo == nil || sessionsRepo == nil {
		log.Fatal("on matchmaker service provided nil repos")
	}
	return &MatchmakerService{
		realmsRepo:   realmsRepo,
		sessionsRepo: sessionsRepo,
	}
}

// Enroll joins the user into a scheduled future session of the realm with a
// free spot, creating a new session when none exists. Capacity is enforced
// inside AddParticipant's transaction; losing the race for the last spot
// retries the search. Joining a session the user is already in returns the
// existing enrollment.
func (serv *MatchmakerService) Enroll(ctx context.Context, userID, realmID uuid.UUID, preMood *int) (*EnrollResult, error) {
	_, err := serv.realmsRepo.GetByID(ctx, realmID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRealmNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}

	for attempt := 0; attempt < matchmakingRetries; attempt++ {
		session, err := serv.sessionsRepo.FindJoinable(ctx, realmID, time.Now().UTC())
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if session == nil {
			break
		}
		_, err = serv.sessionsRepo.AddParticipant(ctx, session.ID, userID, preMood)
		switch {
		case err == nil, errors.Is(err, errorvalues.ErrAlreadyJoined):
			return &EnrollResult{
				SessionID:     session.ID,
				RoomCode:      session.RoomCode,
				ScheduledTime: session.ScheduledTime,
			}, nil
		case errors.Is(err, errorvalues.ErrSessionFull), errors.Is(err, errorvalues.ErrSessionNotJoinable):
			// Someone grabbed the last spot or the session started, look again
			continue
		default:
			return nil, errors.New("repository error: " + err.Error())
		}
	}

	session, err := serv.createSession(ctx, realmID)
	if err != nil {
		return nil, err
	}
	_, err = serv.sessionsRepo.AddParticipant(ctx, session.ID, userID, preMood)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &EnrollResult{
		SessionID:     session.ID,
		RoomCode:      session.RoomCode,
		ScheduledTime: session.ScheduledTime,
	}, nil
}

func (serv *MatchmakerService) createSession(ctx context.Context, realmID uuid.UUID) (*entity.Session, error) {
	for attempt := 0; attempt < matchmakingRetries; attempt++ {
		code, err := generateRoomCode()
		if err != nil {
			return nil, errors.New("generating room code error: " + err.Error())
		}
		exists, err := serv.sessionsRepo.RoomCodeExists(ctx, code)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if exists {
			continue
		}
		session := &entity.Session{
			RealmID:       realmID,
			ScheduledTime: time.Now().UTC().Add(sessionLeadTime),
			RoomCode:      code,
		}
		err = serv.sessionsRepo.Create(ctx, session)
		if err != nil {
			// Collision between the exists check and the insert
			if errors.Is(err, errorvalues.ErrRoomCodeExists) {
				continue
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		return session, nil
	}
	return nil, errorvalues.ErrRoomCodeExists
}

func (serv *MatchmakerService) UserSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Session, error) {
	sessions, err := serv.sessionsRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return sessions, nil
}

func generateRoomCode() (string, error) {
	// Largest multiple of the alphabet size below 256; bytes at or above
	// it are rejected to keep the characters uniform
	limit := byte(256 / len(roomCodeAlphabet) * len(roomCodeAlphabet))
	code := make([]byte, 0, roomCodeLength)
	buf := make([]byte, roomCodeLength)
	for len(code) < roomCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			code = append(code, roomCodeAlphabet[int(b)%len(roomCodeAlphabet)])
			if len(code) == roomCodeLength {
				break
			}
		}
	}
	return string(code), nil
}
