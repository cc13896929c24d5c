package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

// Create сохраняет новый шаблон вместе с упражнениями и подходами
// одной транзакцией
func (r *TemplateRepository) Create(ctx context.Context, template *model.Template) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO templates (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, query, template.UserID, template.Name).
		Scan(&template.ID, &template.CreatedAt)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}

	if err := insertTemplateExercises(ctx, tx, template.ID, template.Exercises); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Replace обновляет имя шаблона и целиком пересоздаёт его упражнения и
// подходы (id шаблона сохраняется)
func (r *TemplateRepository) Replace(ctx context.Context, template *model.Template) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `UPDATE templates SET name = $1 WHERE id = $2`, template.Name, template.ID)
	if err != nil {
		return fmt.Errorf("update template name: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("template not found")
	}

	// template_sets уходят каскадом
	_, err = tx.Exec(ctx, `DELETE FROM template_exercises WHERE template_id = $1`, template.ID)
	if err != nil {
		return fmt.Errorf("delete template exercises: %w", err)
	}

	if err := insertTemplateExercises(ctx, tx, template.ID, template.Exercises); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Delete удаляет шаблон (упражнения и подходы каскадно)
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("template not found")
	}

	return nil
}

// GetByUser получает все шаблоны пользователя, новые первыми (без вложенности)
func (r *TemplateRepository) GetByUser(ctx context.Context, userID int64) ([]*model.Template, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM templates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get templates by user: %w", err)
	}
	defer rows.Close()

	var templates []*model.Template
	for rows.Next() {
		var template model.Template
		err := rows.Scan(&template.ID, &template.UserID, &template.Name, &template.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, &template)
	}

	return templates, nil
}

// GetByIDWithExercises получает шаблон вместе с упражнениями и подходами
func (r *TemplateRepository) GetByIDWithExercises(ctx context.Context, id int64) (*model.Template, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM templates
		WHERE id = $1
	`

	var template model.Template
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&template.ID, &template.UserID, &template.Name, &template.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template by id: %w", err)
	}

	exerciseQuery := `
		SELECT id, template_id, name
		FROM template_exercises
		WHERE template_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, exerciseQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get template exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var exercise model.TemplateExercise
		if err := rows.Scan(&exercise.ID, &exercise.TemplateID, &exercise.Name); err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		template.Exercises = append(template.Exercises, &exercise)
	}
	rows.Close()

	setQuery := `
		SELECT id, template_exercise_id, weight, reps
		FROM template_sets
		WHERE template_exercise_id = $1
		ORDER BY id ASC
	`

	for _, exercise := range template.Exercises {
		setRows, err := r.pool.Query(ctx, setQuery, exercise.ID)
		if err != nil {
			return nil, fmt.Errorf("get template sets: %w", err)
		}

		for setRows.Next() {
			var set model.TemplateSet
			if err := setRows.Scan(&set.ID, &set.TemplateExerciseID, &set.Weight, &set.Reps); err != nil {
				setRows.Close()
				return nil, fmt.Errorf("scan template set: %w", err)
			}
			exercise.Sets = append(exercise.Sets, &set)
		}
		setRows.Close()
	}

	return &template, nil
}

// insertTemplateExercises вставляет вложенные упражнения и подходы шаблона
func insertTemplateExercises(ctx context.Context, tx pgx.Tx, templateID int64, exercises []*model.TemplateExercise) error {
	for _, exercise := range exercises {
		var exerciseID int64
		err := tx.QueryRow(
			ctx,
			`INSERT INTO template_exercises (template_id, name) VALUES ($1, $2) RETURNING id`,
			templateID, exercise.Name,
		).Scan(&exerciseID)
		if err != nil {
			return fmt.Errorf("create template exercise: %w", err)
		}
		exercise.ID = exerciseID
		exercise.TemplateID = templateID

		for _, set := range exercise.Sets {
			err := tx.QueryRow(
				ctx,
				`INSERT INTO template_sets (template_exercise_id, weight, reps) VALUES ($1, $2, $3) RETURNING id`,
				exerciseID, set.Weight, set.Reps,
			).Scan(&set.ID)
			if err != nil {
				return fmt.Errorf("create template set: %w", err)
			}
			set.TemplateExerciseID = exerciseID
		}
	}

	return nil
}
