package callbacktypes

import (
	"github.com/Freeeeeet/gymlog_bot/internal/service"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	WorkoutService  *service.WorkoutService
	TemplateService *service.TemplateService
	StatsService    *service.StatsService
	Sessions        *session.Store
	Logger          *zap.Logger
}
