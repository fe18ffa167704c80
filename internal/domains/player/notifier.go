package player

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Notifier surfaces playback failures to the listener.
type Notifier interface {
	Notify(ctx context.Context, userID, message string)
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(_ context.Context, userID, message string) {
	log.Warn().Str("user", userID).Str("notification", message).Msg("playback failed")
}
