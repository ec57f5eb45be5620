package errorvalues

import "errors"

var (
	ErrUserNotFound          = errors.New("user doesn't exist")
	ErrUserExists            = errors.New("such user already exists")
	ErrRealmNotFound         = errors.New("realm doesn't exist")
	ErrSessionNotFound       = errors.New("session doesn't exist")
	ErrSessionFull           = errors.New("session has no free spots")
	ErrSessionNotJoinable    = errors.New("session is not accepting participants")
	ErrAlreadyJoined         = errors.New("user already joined this session")
	ErrParticipationNotFound = errors.New("user is not a participant of this session")
	ErrRoomCodeExists        = errors.New("room code already taken")
	ErrInvalidToken          = errors.New("invalid token")
	ErrValidation            = errors.New("validation failed")
)
