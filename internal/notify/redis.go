package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces the pub/sub channels used for per-client progress.
const channelPrefix = "ocr:"

// RedisSink publishes events over Redis pub/sub. The realtime gateway
// subscribes to "ocr:<channelID>" and forwards messages to the matching
// client connection; a channel with no subscriber simply drops the message,
// which is exactly the tolerance the pipeline needs.
type RedisSink struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisSink(client *redis.Client, logger *slog.Logger) *RedisSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisSink{client: client, logger: logger}
}

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

func (s *RedisSink) Publish(ctx context.Context, channelID, event string, payload any) {
	if channelID == "" {
		return
	}
	msg, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		s.logger.Warn("notify.marshal_failed", "event", event, "error", err)
		return
	}
	if err := s.client.Publish(ctx, channelPrefix+channelID, msg).Err(); err != nil {
		// delivery is best-effort; a dead broker must not abort the job
		s.logger.Debug("notify.publish_failed", "channel", channelID, "event", event, "error", err)
	}
}
