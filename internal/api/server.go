package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/mindshelter/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	realmsService      service.RealmsServiceI
	matchmakerService  service.MatchmakerServiceI
	moodService        service.MoodServiceI
	progressService    service.ProgressServiceI
	preferencesService service.PreferencesServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	RealmsService      service.RealmsServiceI
	MatchmakerService  service.MatchmakerServiceI
	MoodService        service.MoodServiceI
	ProgressService    service.ProgressServiceI
	PreferencesService service.PreferencesServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		realmsService:      servicesOptions.RealmsService,
		matchmakerService:  servicesOptions.MatchmakerService,
		moodService:        servicesOptions.MoodService,
		progressService:    servicesOptions.ProgressService,
		preferencesService: servicesOptions.PreferencesService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Post("/auth/login", s.Login)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)
		r.Get("/realms", s.GetRealms)
		r.Post("/create-session", s.CreateSession)
		r.Post("/create-session-simple", s.CreateSessionSimple)
		r.Post("/complete-session", s.CompleteSession)
		r.Post("/update-preferences", s.UpdatePreferences)
		r.Post("/generate-metaphors", s.GenerateMetaphors)
		r.Get("/progress", s.GetProgress)
		r.Get("/sessions", s.GetSessions)
	})

	return http.ListenAndServe(addr, s.mx)
}
