package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SetRepository struct {
	pool *pgxpool.Pool
}

func NewSetRepository(pool *pgxpool.Pool) *SetRepository {
	return &SetRepository{pool: pool}
}

// Create добавляет подход к упражнению
func (r *SetRepository) Create(ctx context.Context, exerciseID int64, weight float64, reps int) (*model.Set, error) {
	query := `
		INSERT INTO sets (exercise_id, weight, reps)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	set := &model.Set{ExerciseID: exerciseID, Weight: weight, Reps: reps}
	if err := r.pool.QueryRow(ctx, query, exerciseID, weight, reps).Scan(&set.ID); err != nil {
		return nil, fmt.Errorf("create set: %w", err)
	}

	return set, nil
}

// GetLastByExerciseID получает последний созданный подход упражнения.
// bigserial монотонно растёт, поэтому наибольший id - самый свежий.
func (r *SetRepository) GetLastByExerciseID(ctx context.Context, exerciseID int64) (*model.Set, error) {
	query := `
		SELECT id, exercise_id, weight, reps
		FROM sets
		WHERE exercise_id = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var set model.Set
	err := r.pool.QueryRow(ctx, query, exerciseID).Scan(&set.ID, &set.ExerciseID, &set.Weight, &set.Reps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last set: %w", err)
	}

	return &set, nil
}

// Delete удаляет подход
func (r *SetRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sets WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set not found")
	}

	return nil
}
