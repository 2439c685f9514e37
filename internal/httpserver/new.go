package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voicetask/internal/middleware"
	"voicetask/internal/voice"
	tgDelivery "voicetask/internal/voice/delivery/telegram"
	"voicetask/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	voiceUC    voice.UseCase
	middleware middleware.Middleware

	// telegramHandler is nil when the bot integration is not configured.
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	VoiceUC    voice.UseCase
	Middleware middleware.Middleware

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		voiceUC:         cfg.VoiceUC,
		middleware:      cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.voiceUC == nil {
		return errors.New("voice usecase is required")
	}
	return nil
}
