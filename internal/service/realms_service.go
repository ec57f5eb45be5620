package service

import (
	"context"
	"errors"
	"log"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
)

// ContentGeneratorI produces figurative prompts for a realm. The gateway
// recovers from upstream failures with a deterministic fallback set, so
// both calls always come back with usable content.
type ContentGeneratorI interface {
	Metaphors(ctx context.Context, realmName, realmDescription string) []entity.Metaphor
	Icebreaker(ctx context.Context, realmName, metaphorText string) string
}

type RealmsService struct {
	realmsRepo repository.RealmsRepositoryI
	generator  ContentGeneratorI
}

func NewRealmsService(realmsRepo repository.RealmsRepositoryI, generator ContentGeneratorI) *RealmsService {
	if realmsRepo == nil || generator == nil {
		log.Fatal("on realms service provided nil deps")
	}
	return &RealmsService{
		realmsRepo: realmsRepo,
		generator:  generator,
	}
}

func (serv *RealmsService) List(ctx context.Context) ([]*entity.Realm, error) {
	realms, err := serv.realmsRepo.List(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return realms, nil
}

func (serv *RealmsService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Realm, error) {
	realm, err := serv.realmsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRealmNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return realm, nil
}

// GenerateMetaphors produces three figurative prompts for the realm and
// refreshes the realm's cached copy.
func (serv *RealmsService) GenerateMetaphors(ctx context.Context, realmID uuid.UUID) ([]entity.Metaphor, error) {
	realm, err := serv.realmsRepo.GetByID(ctx, realmID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRealmNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	metaphors := serv.generator.Metaphors(ctx, realm.Name, realm.Description)
	err = serv.realmsRepo.UpdateGeneratedContent(ctx, realmID, metaphors, realm.IcebreakerPrompts)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return metaphors, nil
}

// GenerateIcebreaker produces a reflective question for the chosen metaphor
// and appends it to the realm's cached prompt list.
func (serv *RealmsService) GenerateIcebreaker(ctx context.Context, realmID uuid.UUID, metaphorText string) (string, error) {
	realm, err := serv.realmsRepo.GetByID(ctx, realmID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRealmNotFound) {
			return "", err
		}
		return "", errors.New("repository error: " + err.Error())
	}
	icebreaker := serv.generator.Icebreaker(ctx, realm.Name, metaphorText)
	if !slices.Contains(realm.IcebreakerPrompts, icebreaker) {
		prompts := append(realm.IcebreakerPrompts, icebreaker)
		err = serv.realmsRepo.UpdateGeneratedContent(ctx, realmID, realm.Metaphors, prompts)
		if err != nil {
			return "", errors.New("repository error: " + err.Error())
		}
	}
	return icebreaker, nil
}
