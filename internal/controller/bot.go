package controller

import (
	"context"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/handlers"
	"github.com/Freeeeeet/gymlog_bot/internal/service"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	deps     *callbacktypes.Handler
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	workoutService *service.WorkoutService,
	templateService *service.TemplateService,
	statsService *service.StatsService,
	sessions *session.Store,
	logger *zap.Logger,
) *BotController {
	deps := &callbacktypes.Handler{
		WorkoutService:  workoutService,
		TemplateService: templateService,
		StatsService:    statsService,
		Sessions:        sessions,
		Logger:          logger,
	}

	return &BotController{
		bot:      botInstance,
		handlers: handlers.NewHandlers(deps),
		deps:     deps,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)

	// Команды живой тренировки
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new", bot.MatchTypeExact, c.handlers.HandleNew)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/finish", bot.MatchTypeExact, c.handlers.HandleFinish)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancelWorkout)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/undo", bot.MatchTypeExact, c.handlers.HandleUndo)

	// История: /find принимает дату аргументом, поэтому matching по префиксу
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/find", bot.MatchTypePrefix, c.handlers.HandleFind)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/workouts", bot.MatchTypeExact, c.handlers.HandleWorkouts)

	// Шаблоны
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new_template", bot.MatchTypeExact, c.handlers.HandleNewTemplate)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/templates", bot.MatchTypeExact, c.handlers.HandleTemplates)

	// Свободный текст: имена упражнений, подходы и ввод редактора шаблонов
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handleCallbackQuery)

	return c.setCommands(ctx)
}

func (c *BotController) handleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callbacks.Route(ctx, b, update.CallbackQuery, c.deps)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "new", Description: "Start a new workout session"},
		{Command: "finish", Description: "Complete the current workout session"},
		{Command: "cancel", Description: "Cancel the current workout session"},
		{Command: "undo", Description: "Remove the last set or exercise"},
		{Command: "find", Description: "Retrieve workouts by date"},
		{Command: "workouts", Description: "Browse your workout history"},
		{Command: "new_template", Description: "Create a workout template"},
		{Command: "templates", Description: "Manage your saved templates"},
		{Command: "help", Description: "Show usage instructions"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
