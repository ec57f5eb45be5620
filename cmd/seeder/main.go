// Command seeder populates the realm catalog with the built-in themes.
// It is intended to be run once after migrations, not as part of the main
// server. Re-running it against a seeded database is a no-op.
package main

import (
	"context"
	"log"
	"time"

	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/cleanup"
	"github.com/limbo/mindshelter/pkg/config"
	"github.com/limbo/mindshelter/pkg/entity"
)

var realms = []entity.Realm{
	{
		Name:         "Calm Mind",
		Description:  "A space to quiet racing thoughts and find steadiness",
		Category:     "anxiety",
		FocusOutcome: "anxiety_reduction",
		ColorScheme:  "blue",
	},
	{
		Name:         "Restful Nights",
		Description:  "Wind down together and build healthier sleep rituals",
		Category:     "sleep",
		FocusOutcome: "sleep_improvement",
		ColorScheme:  "purple",
	},
	{
		Name:         "Work Balance",
		Description:  "Untangle workload pressure and set sustainable boundaries",
		Category:     "work_stress",
		FocusOutcome: "stress_management",
		ColorScheme:  "green",
	},
	{
		Name:         "Daily Wins",
		Description:  "Share small victories and practice noticing the good",
		Category:     "positivity",
		FocusOutcome: "mood_boost",
		ColorScheme:  "orange",
	},
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	realmsRepo := repository.NewRealmsRepo(&dbCfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := realmsRepo.Count(ctx)
	if err != nil {
		log.Fatal("counting realms error: " + err.Error())
	}
	if count > 0 {
		log.Printf("realm catalog already seeded (%d realms), nothing to do", count)
		cleanup.CleanUp()
		return
	}
	for i := range realms {
		if err := realmsRepo.Create(ctx, &realms[i]); err != nil {
			log.Fatal("seeding realm " + realms[i].Name + " error: " + err.Error())
		}
		log.Printf("seeded realm %s (%s)", realms[i].Name, realms[i].ID)
	}
	cleanup.CleanUp()
}
