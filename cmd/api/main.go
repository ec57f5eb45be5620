// @title MindShelter API
// @description API for the group-session wellness app "MindShelter"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"log/slog"

	"github.com/limbo/mindshelter/internal/api"
	"github.com/limbo/mindshelter/internal/generator"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/internal/service"
	"github.com/limbo/mindshelter/pkg/cleanup"
	"github.com/limbo/mindshelter/pkg/config"
	jwtservice "github.com/limbo/mindshelter/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	realmsRepo := repository.NewRealmsRepo(&dbCfg)
	sessionsRepo := repository.NewSessionsRepo(&dbCfg)
	moodRepo := repository.NewMoodRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)
	prefsRepo := repository.NewPreferencesRepo(&dbCfg)

	gateway := generator.New(
		cfg.GetString("ANTHROPIC_API_KEY"),
		cfg.GetStringOrDefault("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		slog.Default(),
	)

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, prefsRepo),
		RealmsService:      service.NewRealmsService(realmsRepo, gateway),
		MatchmakerService:  service.NewMatchmakerService(realmsRepo, sessionsRepo),
		MoodService:        service.NewMoodService(moodRepo),
		ProgressService:    service.NewProgressService(progressRepo, sessionsRepo, moodRepo),
		PreferencesService: service.NewPreferencesService(prefsRepo),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
