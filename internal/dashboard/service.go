package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/records/bodyrecords"
	"github.com/phuong-practice-projects/healthy-system/internal/records/diaries"
	"github.com/phuong-practice-projects/healthy-system/internal/records/exercises"
	"github.com/phuong-practice-projects/healthy-system/internal/records/meals"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/metrics"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

const (
	computationStreak      = "streak"
	computationAchievement = "achievement"
)

type activityRepo interface {
	ActivityDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	DailyMealCount(ctx context.Context, userID uuid.UUID, day time.Time, mealType meals.Type) (int, error)
	DailyCount(ctx context.Context, userID uuid.UUID, day time.Time, kind string) (int, error)
}

// Service computes the dashboard analytics. A data access failure is answered
// with a fallback result and a logged warning. Only cancellation of the
// caller's context is returned as an error.
type Service struct {
	repo           activityRepo
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(repo activityRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// NewServiceWithClock is NewService with a fixed notion of "now".
func NewServiceWithClock(repo activityRepo, metricsManager *metrics.Manager, nowFunc func() time.Time) *Service {
	s := NewService(repo, metricsManager)
	s.nowFunc = nowFunc
	return s
}

// Today is the current UTC calendar day.
func (s *Service) Today() time.Time {
	return records.Day(s.nowFunc())
}

func (s *Service) Streak(ctx context.Context, userID uuid.UUID) (_ Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer s.observe(computationStreak, time.Now())

	if err := ctx.Err(); err != nil {
		return Streak{}, err
	}

	dates, err := s.repo.ActivityDates(ctx, userID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Streak{}, ctxErr
		}
		log.Warnf("streak for user %s, reading activity dates: %s", userID, err)
		s.metricsManager.DashboardFallback(computationStreak)
		return Streak{}, nil
	}

	streak := CalculateStreak(dates, s.Today())
	span.SetAttributes(attribute.Int("streak.current", streak.Current))
	span.SetAttributes(attribute.Int("streak.best", streak.Best))
	return streak, nil
}

// Achievement scores the given day. The daily counts are read concurrently.
func (s *Service) Achievement(ctx context.Context, userID uuid.UUID, day time.Time) (_ Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.achievement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer s.observe(computationAchievement, time.Now())

	day = records.Day(day)
	span.SetAttributes(attribute.String("day", day.Format(records.DayLayout)))

	counts, err := s.dailyCounts(ctx, userID, day)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Achievement{}, ctxErr
		}
		log.Warnf("achievement for user %s on %s, reading daily counts: %s", userID, day.Format(records.DayLayout), err)
		s.metricsManager.DashboardFallback(computationAchievement)
		return FallbackAchievement(day), nil
	}

	achievement := Score(day, counts)
	span.SetAttributes(attribute.Float64("overall_rate", achievement.OverallRate))
	return achievement, nil
}

func (s *Service) dailyCounts(ctx context.Context, userID uuid.UUID, day time.Time) (DailyCounts, error) {
	var (
		mealCounts = make([]int, len(goalMealTypes))
		counts     DailyCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, mealType := range goalMealTypes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := s.repo.DailyMealCount(gctx, userID, day, mealType)
			mealCounts[i] = c
			return err
		})
	}

	kindCounts := map[string]*int{
		exercises.Kind:   &counts.Exercises,
		bodyrecords.Kind: &counts.BodyRecords,
		diaries.Kind:     &counts.Diaries,
	}
	for kind, dst := range kindCounts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := s.repo.DailyCount(gctx, userID, day, kind)
			*dst = c
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return DailyCounts{}, err
	}

	counts.MealTypes = make(map[meals.Type]int, len(goalMealTypes))
	for i, mealType := range goalMealTypes {
		counts.MealTypes[mealType] = mealCounts[i]
	}
	return counts, nil
}

func (s *Service) observe(computation string, start time.Time) {
	s.metricsManager.ObserveDashboard(computation, time.Since(start))
}

// IsCancellation reports whether err came from the caller abandoning the request.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
