package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voicetask/internal/voice"
	"voicetask/pkg/response"
)

// Parse godoc
// @Summary     Parse a voice transcript
// @Description Parses a transcribed utterance into a structured task draft and opens a pending confirmation session.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Transcript"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Confirm godoc
// @Summary     Confirm a pending parse
// @Description Applies optional user edits and turns the pending session into a task, creating a calendar reminder when a due date is set.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Session and edits"
// @Success     200 {object} confirmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Confirm(ctx, h.scope(c), req.toInput())
	if err != nil {
		if errors.Is(err, voice.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, confirmResp{Task: h.newTaskResp(output.Task)})
}

// Cancel godoc
// @Summary     Cancel a pending session
// @Description Discards a pending confirmation session without creating a task.
// @Tags        Voice
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Router      /api/v1/voice/sessions/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, h.scope(c), c.Param("id")); err != nil {
		if errors.Is(err, voice.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"cancelled": true})
}

// Stats godoc
// @Summary     Transcript diagnostics
// @Description Returns keyword presence and a complexity score for a transcript without opening a session.
// @Tags        Voice
// @Produce     json
// @Param       text query string false "Transcript text"
// @Success     200 {object} statsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/voice/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Stats(ctx, voice.StatsInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, statsResp{Stats: output.Stats})
}
