package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"conversation-intent-toolkit/internal/chat"
	pkgLog "conversation-intent-toolkit/pkg/log"
	pkgResponse "conversation-intent-toolkit/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// ProcessQuery handles one chat message
// @Summary Process a chat query
// @Description Run the calendar and travel extractors over a message and forward it to the agent runner
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body processQueryReq true "Chat query"
// @Success 200 {object} response.Resp "Runner reply with extractor results"
// @Failure 400 {object} response.Resp "Malformed or empty query"
// @Router /query [post]
func (h *handler) ProcessQuery(c *gin.Context) {
	ctx := c.Request.Context()

	var req processQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		pkgResponse.Error(c, chat.ErrEmptyQuery, nil)
		return
	}

	out, err := h.uc.ProcessMessage(ctx, req.toScope(), chat.ProcessInput{Text: req.Query})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyQuery) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat handler: process message failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, newProcessQueryResp(out))
}
