package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/internal/model"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processConfirmReq binds and validates the confirm request body.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processStatsReq binds the stats query parameters.
func (h *handler) processStatsReq(c *gin.Context) (statsReq, error) {
	var req statsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scope derives the caller identity. Requests without a user header share
// the anonymous scope.
func (h *handler) scope(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	return model.Scope{UserID: userID}
}
