package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindshelter/internal/error_values"
	"github.com/limbo/mindshelter/internal/repository"
	"github.com/limbo/mindshelter/pkg/entity"
)

const (
	BadgeFirstSession   = "first_session"
	BadgeSevenDayStreak = "seven_day_streak"
	BadgeMonthStreak    = "thirty_day_streak"
	BadgeMoodImprover   = "mood_improver"
)

// Focus-area tags rolled up into each trend category.
var (
	anxietyAreas    = []string{"anxiety", "worry"}
	sleepAreas      = []string{"falling_asleep", "staying_asleep"}
	workStressAreas = []string{"workload", "boundaries"}
)

type ProgressService struct {
	progressRepo repository.ProgressRepositoryI
	sessionsRepo repository.SessionsRepositoryI
	moodRepo     repository.MoodRepositoryI
}

func NewProgressService(progressRepo repository.ProgressRepositoryI, sessionsRepo repository.SessionsRepositoryI, moodRepo repository.MoodRepositoryI) *ProgressService {
	if progressRepo == nil || sessionsRepo == nil || moodRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		progressRepo: progressRepo,
		sessionsRepo: sessionsRepo,
		moodRepo:     moodRepo,
	}
}

// RecordCheckin advances the streak for today's check-in. Comparison is by
// UTC calendar day: a one day gap extends the streak, a bigger gap resets
// it to 1 and a same-day repeat leaves it unchanged.
func (serv *ProgressService) RecordCheckin(ctx context.Context, userID uuid.UUID) (*entity.Progress, error) {
	progress, err := serv.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if progress == nil {
		progress = &entity.Progress{UserID: userID}
	}
	now := time.Now().UTC()
	if progress.LastSessionDate == nil {
		progress.CurrentStreak = 1
	} else {
		switch gap := calendarDaysBetween(*progress.LastSessionDate, now); {
		case gap == 1:
			progress.CurrentStreak++
		case gap > 1:
			progress.CurrentStreak = 1
		}
	}
	if progress.CurrentStreak > progress.LongestStreak {
		progress.LongestStreak = progress.CurrentStreak
	}
	progress.TotalSessions++
	progress.LastSessionDate = &now

	if progress.TotalSessions == 1 {
		progress.Badges = addBadge(progress.Badges, BadgeFirstSession)
	}
	if progress.CurrentStreak >= 7 {
		progress.Badges = addBadge(progress.Badges, BadgeSevenDayStreak)
	}
	if progress.CurrentStreak >= 30 {
		progress.Badges = addBadge(progress.Badges, BadgeMonthStreak)
	}

	err = serv.progressRepo.Upsert(ctx, progress)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return progress, nil
}

// RecordCompletion stores post-session mood and rating on the participation
// row. When both moods are known and the post one is higher, the user earns
// mood_improver. Recording the same completion twice changes nothing.
func (serv *ProgressService) RecordCompletion(ctx context.Context, sessionID, userID uuid.UUID, req *CompletionRequest) error {
	if err := Validate(*req); err != nil {
		return err
	}
	participation, err := serv.sessionsRepo.GetParticipant(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipationNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	err = serv.sessionsRepo.CompleteParticipation(ctx, sessionID, userID, req.PostMood, req.Rating)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipationNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if participation.PreSessionMood == nil || req.PostMood <= *participation.PreSessionMood {
		return nil
	}
	progress, err := serv.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if progress == nil {
		progress = &entity.Progress{UserID: userID}
	}
	if slices.Contains(progress.Badges, BadgeMoodImprover) {
		return nil
	}
	progress.Badges = addBadge(progress.Badges, BadgeMoodImprover)
	err = serv.progressRepo.Upsert(ctx, progress)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *ProgressService) Get(ctx context.Context, userID uuid.UUID) (*entity.Progress, error) {
	progress, err := serv.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if progress == nil {
		progress = &entity.Progress{UserID: userID, Badges: []string{}}
	}
	return progress, nil
}

// Summarize averages mood entries over the trailing window. A category with
// no entries stays nil, never zero.
func (serv *ProgressService) Summarize(ctx context.Context, userID uuid.UUID, windowDays int) (*entity.TrendSummary, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	entries, err := serv.moodRepo.GetByUserSince(ctx, userID, since)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary := entity.TrendSummary{
		RecentMoodAvg: averageScore(entries, nil),
		AnxietyAvg:    averageScore(entries, anxietyAreas),
		SleepAvg:      averageScore(entries, sleepAreas),
		WorkStressAvg: averageScore(entries, workStressAreas),
	}
	return &summary, nil
}

// averageScore averages entries whose focus area is in areas; nil areas
// means all entries. Returns nil for an empty selection.
func averageScore(entries []entity.MoodEntry, areas []string) *float64 {
	var sum, count int
	for _, entry := range entries {
		if areas != nil && !slices.Contains(areas, entry.FocusArea) {
			continue
		}
		sum += entry.MoodScore
		count++
	}
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}

func addBadge(badges []string, badge string) []string {
	if slices.Contains(badges, badge) {
		return badges
	}
	return append(badges, badge)
}

// calendarDaysBetween counts whole UTC days between two instants, ignoring
// time of day.
func calendarDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.UTC().Year(), from.UTC().Month(), from.UTC().Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.UTC().Year(), to.UTC().Month(), to.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
