package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkoutRepository struct {
	pool *pgxpool.Pool
}

func NewWorkoutRepository(pool *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{pool: pool}
}

// Create создаёт новую тренировку
func (r *WorkoutRepository) Create(ctx context.Context, workout *model.Workout) error {
	query := `
		INSERT INTO workouts (user_id, start_time, end_time, is_finished)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		workout.UserID,
		workout.StartTime,
		workout.EndTime,
		workout.IsFinished,
	).Scan(&workout.ID, &workout.CreatedAt)

	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}

	return nil
}

// GetByID получает тренировку по ID (без упражнений)
func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*model.Workout, error) {
	query := `
		SELECT id, user_id, start_time, end_time, is_finished, created_at
		FROM workouts
		WHERE id = $1
	`

	var workout model.Workout
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.StartTime,
		&workout.EndTime,
		&workout.IsFinished,
		&workout.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workout by id: %w", err)
	}

	return &workout, nil
}

// GetByIDWithExercises получает тренировку вместе с упражнениями и
// подходами (в порядке создания)
func (r *WorkoutRepository) GetByIDWithExercises(ctx context.Context, id int64) (*model.Workout, error) {
	workout, err := r.GetByID(ctx, id)
	if err != nil || workout == nil {
		return workout, err
	}

	if err := r.loadExercises(ctx, workout); err != nil {
		return nil, err
	}

	return workout, nil
}

// Finish помечает тренировку завершённой
func (r *WorkoutRepository) Finish(ctx context.Context, id int64, endTime time.Time) error {
	query := `
		UPDATE workouts
		SET end_time = $1, is_finished = TRUE
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, endTime, id)
	if err != nil {
		return fmt.Errorf("finish workout: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("workout not found")
	}

	return nil
}

// Delete удаляет тренировку (упражнения и подходы удаляются каскадно)
func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM workouts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("workout not found")
	}

	return nil
}

// GetFinishedByUser получает завершённые тренировки пользователя,
// новые первыми, с пагинацией
func (r *WorkoutRepository) GetFinishedByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Workout, error) {
	query := `
		SELECT id, user_id, start_time, end_time, is_finished, created_at
		FROM workouts
		WHERE user_id = $1 AND is_finished = TRUE
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get finished workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetFinishedBetween получает завершённые тренировки пользователя,
// начавшиеся в интервале [from, to), по возрастанию времени начала,
// вместе с упражнениями и подходами
func (r *WorkoutRepository) GetFinishedBetween(ctx context.Context, userID int64, from, to time.Time) ([]*model.Workout, error) {
	query := `
		SELECT id, user_id, start_time, end_time, is_finished, created_at
		FROM workouts
		WHERE user_id = $1 AND is_finished = TRUE
		  AND start_time >= $2 AND start_time < $3
		ORDER BY start_time ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get workouts between: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}

	for _, workout := range workouts {
		if err := r.loadExercises(ctx, workout); err != nil {
			return nil, err
		}
	}

	return workouts, nil
}

// GetLastFinished получает самую свежую завершённую тренировку пользователя
func (r *WorkoutRepository) GetLastFinished(ctx context.Context, userID int64) (*model.Workout, error) {
	query := `
		SELECT id, user_id, start_time, end_time, is_finished, created_at
		FROM workouts
		WHERE user_id = $1 AND is_finished = TRUE
		ORDER BY start_time DESC
		LIMIT 1
	`

	var workout model.Workout
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.StartTime,
		&workout.EndTime,
		&workout.IsFinished,
		&workout.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last finished workout: %w", err)
	}

	return &workout, nil
}

// loadExercises подгружает упражнения и подходы тренировки.
// Порядок - по возрастанию id, то есть в порядке создания.
func (r *WorkoutRepository) loadExercises(ctx context.Context, workout *model.Workout) error {
	query := `
		SELECT id, workout_id, name
		FROM exercises
		WHERE workout_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, workout.ID)
	if err != nil {
		return fmt.Errorf("get exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		var exercise model.Exercise
		if err := rows.Scan(&exercise.ID, &exercise.WorkoutID, &exercise.Name); err != nil {
			return fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, &exercise)
	}
	rows.Close()

	setQuery := `
		SELECT id, exercise_id, weight, reps
		FROM sets
		WHERE exercise_id = $1
		ORDER BY id ASC
	`

	for _, exercise := range exercises {
		setRows, err := r.pool.Query(ctx, setQuery, exercise.ID)
		if err != nil {
			return fmt.Errorf("get sets: %w", err)
		}

		for setRows.Next() {
			var set model.Set
			if err := setRows.Scan(&set.ID, &set.ExerciseID, &set.Weight, &set.Reps); err != nil {
				setRows.Close()
				return fmt.Errorf("scan set: %w", err)
			}
			exercise.Sets = append(exercise.Sets, &set)
		}
		setRows.Close()
	}

	workout.Exercises = exercises
	return nil
}

func scanWorkouts(rows pgx.Rows) ([]*model.Workout, error) {
	var workouts []*model.Workout
	for rows.Next() {
		var workout model.Workout
		err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.StartTime,
			&workout.EndTime,
			&workout.IsFinished,
			&workout.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, &workout)
	}

	return workouts, nil
}
