package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
)

type UserService struct {
	usersRepo repository.UsersRepositoryI
	prefsRepo repository.PreferencesRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, prefsRepo repository.PreferencesRepositoryI) *UserService {
	return &UserService{
		usersRepo: usersRepo,
		prefsRepo: prefsRepo,
	}
}

// Login finds the user by email or creates them on first visit. New users
// get a default preferences row.
func (us *UserService) Login(ctx context.Context, req *LoginRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := Validate(LoginRequest{Email: email, FullName: req.FullName}); err != nil {
		return nil, err
	}
	user, err := us.usersRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	fullName := req.FullName
	if fullName == "" {
		fullName = "User"
	}
	user = &entity.User{
		Email:    email,
		FullName: fullName,
	}
	err = us.usersRepo.Create(ctx, user)
	if err != nil {
		// Lost a race against a concurrent first login, the row exists now
		if errors.Is(err, errorvalues.ErrUserExists) {
			user, err = us.usersRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, errors.New("repository searching error: " + err.Error())
			}
			return user, nil
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	err = us.prefsRepo.Upsert(ctx, &entity.Preferences{
		UserID:               user.ID,
		UserType:             "university_student",
		SubscriptionType:     "none",
		AmbientSoundsEnabled: true,
	})
	if err != nil {
		return nil, errors.New("repository preferences error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.usersRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
