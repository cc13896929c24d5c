package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExerciseRepository struct {
	pool *pgxpool.Pool
}

func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{pool: pool}
}

// Create добавляет упражнение к тренировке
func (r *ExerciseRepository) Create(ctx context.Context, workoutID int64, name string) (*model.Exercise, error) {
	query := `
		INSERT INTO exercises (workout_id, name)
		VALUES ($1, $2)
		RETURNING id
	`

	exercise := &model.Exercise{WorkoutID: workoutID, Name: name}
	if err := r.pool.QueryRow(ctx, query, workoutID, name).Scan(&exercise.ID); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	return exercise, nil
}

// GetByID получает упражнение по ID
func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*model.Exercise, error) {
	query := `
		SELECT id, workout_id, name
		FROM exercises
		WHERE id = $1
	`

	var exercise model.Exercise
	err := r.pool.QueryRow(ctx, query, id).Scan(&exercise.ID, &exercise.WorkoutID, &exercise.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exercise by id: %w", err)
	}

	return &exercise, nil
}

// Delete удаляет упражнение (подходы удаляются каскадно)
func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM exercises WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("exercise not found")
	}

	return nil
}
