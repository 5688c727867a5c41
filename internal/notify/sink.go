// Package notify delivers realtime events to client channels.
package notify

import "context"

// Sink publishes an event to one client channel. Publication is
// fire-and-forget: implementations must tolerate missing or disconnected
// channels and must never propagate delivery errors into the pipeline.
type Sink interface {
	Publish(ctx context.Context, channelID, event string, payload any)
}

// NopSink drops every event. Used when no realtime transport is configured.
type NopSink struct{}

func (NopSink) Publish(context.Context, string, string, any) {}
