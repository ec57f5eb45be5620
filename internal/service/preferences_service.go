package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
)

type PreferencesService struct {
	prefsRepo repository.PreferencesRepositoryI
}

func NewPreferencesService(prefsRepo repository.PreferencesRepositoryI) *PreferencesService {
	if prefsRepo == nil {
		log.Fatal("on preferences service provided nil repo")
	}
	return &PreferencesService{
		prefsRepo: prefsRepo,
	}
}

// Update applies only the fields present in the request on top of the
// stored row, creating a default row for users who never saved one.
func (serv *PreferencesService) Update(ctx context.Context, userID uuid.UUID, req *UpdatePreferencesRequest) (*entity.Preferences, error) {
	if err := Validate(*req); err != nil {
		return nil, err
	}
	prefs, err := serv.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if prefs == nil {
		prefs = &entity.Preferences{
			UserID:               userID,
			UserType:             "university_student",
			SubscriptionType:     "none",
			AmbientSoundsEnabled: true,
		}
	}
	if req.UserType != nil {
		prefs.UserType = *req.UserType
	}
	if req.SubscriptionType != nil {
		prefs.SubscriptionType = *req.SubscriptionType
	}
	if req.AmbientSoundsEnabled != nil {
		prefs.AmbientSoundsEnabled = *req.AmbientSoundsEnabled
	}
	if req.Timezone != nil {
		prefs.Timezone = *req.Timezone
	}
	if req.PreferredSessionTimes != nil {
		prefs.PreferredSessionTimes = req.PreferredSessionTimes
	}
	err = serv.prefsRepo.Upsert(ctx, prefs)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return prefs, nil
}
