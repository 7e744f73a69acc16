package http

import (
	"github.com/gin-gonic/gin"

	"conversation-intent-toolkit/internal/chat"
	pkgLog "conversation-intent-toolkit/pkg/log"
)

// Handler is the interface for the chat HTTP delivery handler.
type Handler interface {
	ProcessQuery(c *gin.Context)
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
