package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/service"
	"github.com/limbo/mindshelter/pkg/entity"
	"github.com/limbo/mindshelter/pkg/httputil"
)

type LoginRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type CreateSessionRequest struct {
	RealmID        string `json:"realm_id"`
	PreSessionMood *int   `json:"pre_session_mood,omitempty"`
	ChosenMetaphor string `json:"chosen_metaphor,omitempty"`
}

type CreateSessionSimpleRequest struct {
	RealmID   string `json:"realm_id"`
	MoodScore int    `json:"mood_score"`
	FocusArea string `json:"focus_area"`
	Notes     string `json:"notes,omitempty"`
}

type CompleteSessionRequest struct {
	SessionID       string `json:"session_id"`
	PostSessionMood int    `json:"post_mood"`
	Rating          int    `json:"rating"`
}

type UpdatePreferencesRequest struct {
	UserType              *string  `json:"user_type,omitempty"`
	SubscriptionType      *string  `json:"subscription_type,omitempty"`
	AmbientSoundsEnabled  *bool    `json:"ambient_sounds_enabled,omitempty"`
	Timezone              *string  `json:"timezone,omitempty"`
	PreferredSessionTimes []string `json:"preferred_session_times,omitempty"`
}

type GenerateMetaphorsRequest struct {
	RealmID string `json:"realm_id"`
}

type GetSessionsResponse struct {
	UserID   string            `json:"uid"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Sessions []*entity.Session `json:"sessions"`
}

type GetProgressResponse struct {
	Progress *entity.Progress     `json:"progress"`
	Trends   *entity.TrendSummary `json:"trends"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, &service.LoginRequest{
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("login error: invalid email")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid email", nil)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"email": user.Email,
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetRealms(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	realms, err := s.realmsService.List(ctx)
	if err != nil {
		logger.Error("getting realms list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting realms list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"realms": realms})
	logger.Info("realms provided")
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateSessionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	realmID, err := uuid.Parse(req.RealmID)
	if err != nil {
		logger.Error("create session error: invalid realm id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid realm id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	result, err := s.matchmakerService.Enroll(ctx, uid, realmID, req.PreSessionMood)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRealmNotFound):
			logger.Error("create session error: unexist realm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "realm doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create session error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating session", nil)
		}
		return
	}
	resp := map[string]any{
		"session_id":     result.SessionID.String(),
		"room_code":      result.RoomCode,
		"scheduled_time": result.ScheduledTime,
	}
	if req.ChosenMetaphor != "" {
		icebreaker, err := s.realmsService.GenerateIcebreaker(ctx, realmID, req.ChosenMetaphor)
		if err != nil {
			// Enrollment already succeeded, don't fail the request over a prompt
			logger.Error("icebreaker generation error", slog.String("error", err.Error()))
		} else {
			resp["icebreaker_prompt"] = icebreaker
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
	logger.Info("session enrollment done")
}

func (s *Server) CreateSessionSimple(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateSessionSimpleRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	realmID, err := uuid.Parse(req.RealmID)
	if err != nil {
		logger.Error("create session error: invalid realm id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid realm id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	_, err = s.moodService.Append(ctx, uid, &service.MoodCheckinRequest{
		MoodScore: req.MoodScore,
		FocusArea: req.FocusArea,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create session error: invalid check-in data")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid check-in data", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create session error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create session error: check-in service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving check-in", nil)
		}
		return
	}
	result, err := s.matchmakerService.Enroll(ctx, uid, realmID, &req.MoodScore)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRealmNotFound):
			logger.Error("create session error: unexist realm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "realm doesn't exist", nil)
		default:
			logger.Error("create session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating session", nil)
		}
		return
	}
	progress, err := s.progressService.RecordCheckin(ctx, uid)
	if err != nil {
		logger.Error("create session error: recording check-in progress", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"session_id":     result.SessionID.String(),
		"room_code":      result.RoomCode,
		"scheduled_time": result.ScheduledTime,
		"current_streak": progress.CurrentStreak,
		"badges":         progress.Badges,
	})
	logger.Info("simple session enrollment done")
}

func (s *Server) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CompleteSessionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("complete session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		logger.Error("complete session error: invalid session id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.progressService.RecordCompletion(ctx, sessionID, uid, &service.CompletionRequest{
		PostMood: req.PostSessionMood,
		Rating:   req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("complete session error: invalid completion data")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid completion data", nil)
		case errors.Is(err, errorvalues.ErrParticipationNotFound):
			logger.Error("complete session error: user is not a participant")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session participation doesn't exist", nil)
		default:
			logger.Error("complete session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing session", nil)
		}
		return
	}
	httputil.WriteSuccessResponse(w)
	logger.Info("session completion recorded")
}

func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update preferences error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdatePreferencesRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update preferences error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	prefs, err := s.preferencesService.Update(ctx, uid, &service.UpdatePreferencesRequest{
		UserType:              req.UserType,
		SubscriptionType:      req.SubscriptionType,
		AmbientSoundsEnabled:  req.AmbientSoundsEnabled,
		Timezone:              req.Timezone,
		PreferredSessionTimes: req.PreferredSessionTimes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update preferences error: invalid preferences data")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid preferences data", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("update preferences error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update preferences error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating preferences", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, prefs)
	logger.Info("preferences updated")
}

func (s *Server) GenerateMetaphors(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req GenerateMetaphorsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("generate metaphors error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	realmID, err := uuid.Parse(req.RealmID)
	if err != nil {
		logger.Error("generate metaphors error: invalid realm id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid realm id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	metaphors, err := s.realmsService.GenerateMetaphors(ctx, realmID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRealmNotFound):
			logger.Error("generate metaphors error: unexist realm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "realm doesn't exist", nil)
		default:
			logger.Error("generate metaphors error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while generating metaphors", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"metaphors": metaphors})
	logger.Info("metaphors provided")
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	window, err := strconv.Atoi(r.URL.Query().Get("window"))
	if err != nil || window < 1 || window > 90 {
		window = 7
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.progressService.Get(ctx, uid)
	if err != nil {
		logger.Error("get progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting progress", nil)
		return
	}
	trends, err := s.progressService.Summarize(ctx, uid, window)
	if err != nil {
		logger.Error("get progress error: summarizing trends", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while summarizing trends", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetProgressResponse{
		Progress: progress,
		Trends:   trends,
	})
	logger.Info("progress provided")
}

func (s *Server) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get sessions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	sessions, err := s.matchmakerService.UserSessions(ctx, uid, limit, offset)
	if err != nil {
		logger.Error("getting sessions list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting sessions list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetSessionsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Sessions: sessions,
	})
	logger.Info("sessions provided")
}
