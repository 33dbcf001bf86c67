package service

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier writes "item added" events to the log.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ItemAdded(_ context.Context, quantity int, itemName string) {
	n.log.Info().
		Int("quantity", quantity).
		Str("item", itemName).
		Msgf("Added %d %s to cart", quantity, itemName)
}
