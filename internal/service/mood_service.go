package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
)

type MoodService struct {
	moodRepo repository.MoodRepositoryI
}

func NewMoodService(moodRepo repository.MoodRepositoryI) *MoodService {
	if moodRepo == nil {
		log.Fatal("on mood service provided nil repo")
	}
	return &MoodService{
		moodRepo: moodRepo,
	}
}

func (serv *MoodService) Append(ctx context.Context, userID uuid.UUID, req *MoodCheckinRequest) (*entity.MoodEntry, error) {
	if err := Validate(*req); err != nil {
		return nil, err
	}
	entry := &entity.MoodEntry{
		UserID:    userID,
		MoodScore: req.MoodScore,
		FocusArea: req.FocusArea,
		Notes:     req.Notes,
	}
	err := serv.moodRepo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return entry, nil
}

func (serv *MoodService) QueryWindow(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.MoodEntry, error) {
	entries, err := serv.moodRepo.GetByUserSince(ctx, userID, since)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}
