package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/Freeeeeet/gymlog_bot/internal/parse"
	"go.uber.org/zap"
)

var (
	// ErrInvalidDate ввод не распознан как дата
	ErrInvalidDate = errors.New("invalid date input")
	// ErrNoHistory у пользователя нет ни одной завершённой тренировки
	ErrNoHistory = errors.New("no finished workouts in history")
)

type StatsService struct {
	workoutRepo WorkoutRepo
	logger      *zap.Logger
}

func NewStatsService(workoutRepo WorkoutRepo, logger *zap.Logger) *StatsService {
	return &StatsService{workoutRepo: workoutRepo, logger: logger}
}

// WorkoutsByDate находит завершённые тренировки пользователя за один
// календарный день. Пустой ввод означает день последней завершённой
// тренировки. Возвращает разрешённую дату и тренировки (с упражнениями
// и подходами), по возрастанию времени начала.
func (s *StatsService) WorkoutsByDate(ctx context.Context, userID int64, input string) (time.Time, []*model.Workout, error) {
	now := time.Now()

	var targetDate time.Time
	if input != "" {
		parsed, ok := parse.Date(input, now)
		if !ok {
			return time.Time{}, nil, ErrInvalidDate
		}
		targetDate = parsed
	} else {
		last, err := s.workoutRepo.GetLastFinished(ctx, userID)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("get last workout: %w", err)
		}
		if last == nil {
			return time.Time{}, nil, ErrNoHistory
		}

		start := last.StartTime.In(now.Location())
		targetDate = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	}

	dayStart := targetDate
	dayEnd := dayStart.AddDate(0, 0, 1)

	workouts, err := s.workoutRepo.GetFinishedBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("get workouts by date: %w", err)
	}

	return targetDate, workouts, nil
}

// ListWorkouts постранично выдаёт завершённые тренировки пользователя,
// новые первыми. Возвращает смещение следующей страницы, если она есть.
func (s *StatsService) ListWorkouts(ctx context.Context, userID int64, limit, offset int) ([]*model.Workout, int, bool, error) {
	// Запрашиваем на одну больше, чтобы узнать о следующей странице
	workouts, err := s.workoutRepo.GetFinishedByUser(ctx, userID, limit+1, offset)
	if err != nil {
		return nil, 0, false, fmt.Errorf("list workouts: %w", err)
	}

	if len(workouts) > limit {
		return workouts[:limit], offset + limit, true, nil
	}

	return workouts, 0, false, nil
}
