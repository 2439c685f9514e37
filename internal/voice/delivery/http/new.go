package http

import (
	"voicetask/internal/voice"
	pkgLog "voicetask/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for the voice domain.
func New(l pkgLog.Logger, uc voice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
