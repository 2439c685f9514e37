package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	voiceHTTP "voicetask/internal/voice/delivery/http"
)

// setupVoiceDomain wires the voice capture domain into the API group.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := voiceHTTP.New(srv.l, srv.voiceUC)
	voiceHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}
