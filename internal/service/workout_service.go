package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"go.uber.org/zap"
)

// WorkoutRepo операции хранилища над тренировками
type WorkoutRepo interface {
	Create(ctx context.Context, workout *model.Workout) error
	GetByID(ctx context.Context, id int64) (*model.Workout, error)
	GetByIDWithExercises(ctx context.Context, id int64) (*model.Workout, error)
	Finish(ctx context.Context, id int64, endTime time.Time) error
	Delete(ctx context.Context, id int64) error
	GetFinishedByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Workout, error)
	GetFinishedBetween(ctx context.Context, userID int64, from, to time.Time) ([]*model.Workout, error)
	GetLastFinished(ctx context.Context, userID int64) (*model.Workout, error)
}

// ExerciseRepo операции хранилища над упражнениями
type ExerciseRepo interface {
	Create(ctx context.Context, workoutID int64, name string) (*model.Exercise, error)
	GetByID(ctx context.Context, id int64) (*model.Exercise, error)
	Delete(ctx context.Context, id int64) error
}

// SetRepo операции хранилища над подходами
type SetRepo interface {
	Create(ctx context.Context, exerciseID int64, weight float64, reps int) (*model.Set, error)
	GetLastByExerciseID(ctx context.Context, exerciseID int64) (*model.Set, error)
	Delete(ctx context.Context, id int64) error
}

// UndoResultType исход операции undo
type UndoResultType string

const (
	UndoSetDeleted      UndoResultType = "set_deleted"
	UndoExerciseDeleted UndoResultType = "exercise_deleted"
	UndoNothingToDelete UndoResultType = "nothing_to_delete"
)

// UndoResult результат undo: что именно было удалено
type UndoResult struct {
	Type         UndoResultType
	Weight       float64 // заполнено при UndoSetDeleted
	Reps         int     // заполнено при UndoSetDeleted
	ExerciseName string  // заполнено при UndoExerciseDeleted
}

type WorkoutService struct {
	workoutRepo  WorkoutRepo
	exerciseRepo ExerciseRepo
	setRepo      SetRepo
	logger       *zap.Logger
}

func NewWorkoutService(
	workoutRepo WorkoutRepo,
	exerciseRepo ExerciseRepo,
	setRepo SetRepo,
	logger *zap.Logger,
) *WorkoutService {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		setRepo:      setRepo,
		logger:       logger,
	}
}

// StartWorkout создаёт новую тренировку. Время окончания сразу равно
// времени начала и переписывается при завершении.
func (s *WorkoutService) StartWorkout(ctx context.Context, userID int64) (*model.Workout, error) {
	now := time.Now()
	workout := &model.Workout{
		UserID:    userID,
		StartTime: now,
		EndTime:   &now,
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("start workout: %w", err)
	}

	s.logger.Info("Workout started",
		zap.Int64("workout_id", workout.ID),
		zap.Int64("user_id", userID))

	return workout, nil
}

// FinishWorkout помечает тренировку завершённой и возвращает её
// обновлённое состояние
func (s *WorkoutService) FinishWorkout(ctx context.Context, workoutID int64) (*model.Workout, error) {
	if err := s.workoutRepo.Finish(ctx, workoutID, time.Now()); err != nil {
		return nil, fmt.Errorf("finish workout: %w", err)
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get finished workout: %w", err)
	}

	s.logger.Info("Workout finished", zap.Int64("workout_id", workoutID))

	return workout, nil
}

// CancelWorkout удаляет тренировку целиком, а не помечает завершённой
func (s *WorkoutService) CancelWorkout(ctx context.Context, workoutID int64) error {
	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		return fmt.Errorf("cancel workout: %w", err)
	}

	s.logger.Info("Workout canceled", zap.Int64("workout_id", workoutID))

	return nil
}

// AddExercise добавляет упражнение к тренировке
func (s *WorkoutService) AddExercise(ctx context.Context, workoutID int64, name string) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.Create(ctx, workoutID, name)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	return exercise, nil
}

// AddSet добавляет подход к упражнению
func (s *WorkoutService) AddSet(ctx context.Context, exerciseID int64, weight float64, reps int) (*model.Set, error) {
	set, err := s.setRepo.Create(ctx, exerciseID, weight, reps)
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}

	return set, nil
}

// UndoLastLog откатывает последнюю запись упражнения: удаляет самый
// свежий подход, а если подходов нет - само упражнение. Если упражнения
// уже нет, ничего не меняет.
func (s *WorkoutService) UndoLastLog(ctx context.Context, exerciseID int64) (UndoResult, error) {
	lastSet, err := s.setRepo.GetLastByExerciseID(ctx, exerciseID)
	if err != nil {
		return UndoResult{}, fmt.Errorf("find last set: %w", err)
	}

	if lastSet != nil {
		if err := s.setRepo.Delete(ctx, lastSet.ID); err != nil {
			return UndoResult{}, fmt.Errorf("delete set: %w", err)
		}

		s.logger.Info("Set undone",
			zap.Int64("set_id", lastSet.ID),
			zap.Int64("exercise_id", exerciseID))

		return UndoResult{
			Type:   UndoSetDeleted,
			Weight: lastSet.Weight,
			Reps:   lastSet.Reps,
		}, nil
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return UndoResult{}, fmt.Errorf("find exercise: %w", err)
	}
	if exercise == nil {
		return UndoResult{Type: UndoNothingToDelete}, nil
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		return UndoResult{}, fmt.Errorf("delete exercise: %w", err)
	}

	s.logger.Info("Exercise undone",
		zap.Int64("exercise_id", exerciseID),
		zap.String("name", exercise.Name))

	return UndoResult{Type: UndoExerciseDeleted, ExerciseName: exercise.Name}, nil
}

// FindLastWorkouts получает завершённые тренировки пользователя,
// новые первыми
func (s *WorkoutService) FindLastWorkouts(ctx context.Context, userID int64, limit, offset int) ([]*model.Workout, error) {
	return s.workoutRepo.GetFinishedByUser(ctx, userID, limit, offset)
}

// GetWorkoutByID получает тренировку с упражнениями и подходами
func (s *WorkoutService) GetWorkoutByID(ctx context.Context, workoutID int64) (*model.Workout, error) {
	return s.workoutRepo.GetByIDWithExercises(ctx, workoutID)
}
