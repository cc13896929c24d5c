package handlers

import (
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/callbacktypes"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	deps *callbacktypes.Handler
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(deps *callbacktypes.Handler) *Handlers {
	return &Handlers{deps: deps}
}
