package app

import (
	"context"
	"errors"
	"time"

	"github.com/Freeeeeet/gymlog_bot/internal/session"
	badger "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// gcInterval период сборки мусора хранилища сессий
const gcInterval = time.Hour

// Maintenance управляет фоновыми задачами
type Maintenance struct {
	sessions *session.Store
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewMaintenance создаёт новый обслуживающий воркер
func NewMaintenance(sessions *session.Store, logger *zap.Logger) *Maintenance {
	return &Maintenance{
		sessions: sessions,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (m *Maintenance) Start(ctx context.Context) {
	m.logger.Info("Starting background maintenance")

	go m.runSessionGCTask(ctx)
}

// Stop останавливает фоновые задачи
func (m *Maintenance) Stop() {
	m.logger.Info("Stopping background maintenance")
	close(m.stopChan)
}

// runSessionGCTask периодически собирает мусор за истёкшими сессиями
func (m *Maintenance) runSessionGCTask(ctx context.Context) {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.collectSessionGarbage()
		case <-m.stopChan:
			m.logger.Info("Session GC task stopped")
			return
		case <-ctx.Done():
			m.logger.Info("Session GC task cancelled")
			return
		}
	}
}

func (m *Maintenance) collectSessionGarbage() {
	// Повторяем проходы, пока badger находит что переписать
	for {
		err := m.sessions.RunGC()
		if errors.Is(err, badger.ErrNoRewrite) {
			return
		}
		if err != nil {
			m.logger.Error("Session store GC failed", zap.Error(err))
			return
		}
		m.logger.Info("Session store GC pass completed")
	}
}
