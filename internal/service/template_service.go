package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"go.uber.org/zap"
)

// TemplateRepo операции хранилища над шаблонами
type TemplateRepo interface {
	Create(ctx context.Context, template *model.Template) error
	Replace(ctx context.Context, template *model.Template) error
	Delete(ctx context.Context, id int64) error
	GetByUser(ctx context.Context, userID int64) ([]*model.Template, error)
	GetByIDWithExercises(ctx context.Context, id int64) (*model.Template, error)
}

type TemplateService struct {
	templateRepo TemplateRepo
	logger       *zap.Logger
}

func NewTemplateService(templateRepo TemplateRepo, logger *zap.Logger) *TemplateService {
	return &TemplateService{templateRepo: templateRepo, logger: logger}
}

// CreateTemplate сохраняет новый шаблон с вложенными упражнениями
// и подходами
func (s *TemplateService) CreateTemplate(ctx context.Context, userID int64, name string, exercises []*model.TemplateExercise) (*model.Template, error) {
	template := &model.Template{
		UserID:    userID,
		Name:      name,
		Exercises: exercises,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	s.logger.Info("Template created",
		zap.Int64("template_id", template.ID),
		zap.Int64("user_id", userID),
		zap.String("name", name))

	return template, nil
}

// UpdateTemplate целиком заменяет содержимое существующего шаблона:
// имя обновляется, упражнения и подходы пересоздаются, id сохраняется
func (s *TemplateService) UpdateTemplate(ctx context.Context, templateID int64, name string, exercises []*model.TemplateExercise) error {
	template := &model.Template{
		ID:        templateID,
		Name:      name,
		Exercises: exercises,
	}

	if err := s.templateRepo.Replace(ctx, template); err != nil {
		return fmt.Errorf("update template: %w", err)
	}

	s.logger.Info("Template updated",
		zap.Int64("template_id", templateID),
		zap.String("name", name))

	return nil
}

// DeleteTemplate удаляет сохранённый шаблон
func (s *TemplateService) DeleteTemplate(ctx context.Context, templateID int64) error {
	if err := s.templateRepo.Delete(ctx, templateID); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	s.logger.Info("Template deleted", zap.Int64("template_id", templateID))

	return nil
}

// FindAllTemplates получает все шаблоны пользователя
func (s *TemplateService) FindAllTemplates(ctx context.Context, userID int64) ([]*model.Template, error) {
	return s.templateRepo.GetByUser(ctx, userID)
}

// FindTemplateByID получает шаблон с упражнениями и подходами
func (s *TemplateService) FindTemplateByID(ctx context.Context, templateID int64) (*model.Template, error) {
	return s.templateRepo.GetByIDWithExercises(ctx, templateID)
}
