package service

import (
	"context"

	"github.com/melcantwell27/quizWhiz/internal/event"
	"github.com/rs/zerolog/log"
)

// publish logs publisher errors instead of returning them.
func publish(ctx context.Context, p event.Publisher, eventType string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, eventType, payload); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to publish event")
	}
}
