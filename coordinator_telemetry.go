package goLaunch

import (
	"context"
	"time"

	"github.com/MrEthical07/goLaunch/credential"
	"github.com/MrEthical07/goLaunch/launchparams"
)

const (
	telemetryEventBootstrapCompleted = "bootstrap_completed"
)

func (c *Coordinator) emitIdentify(ctx context.Context, userID string, channel credential.Channel, attemptID string) {
	if c == nil || c.telemetry == nil {
		return
	}

	event := TelemetryEvent{
		Timestamp: time.Now().UTC(),
		Kind:      TelemetryKindIdentify,
		UserID:    userID,
		AttemptID: attemptID,
		Channel:   channel.Kind.String(),
	}
	if channel.ExternalID != "" {
		event.Props = map[string]string{
			"external_id": channel.ExternalID,
		}
	}

	c.telemetry.Emit(ctx, event)
}

func (c *Coordinator) emitCapture(
	ctx context.Context,
	name string,
	userID string,
	attemptID string,
	channel credential.Channel,
	propsBuilder func() map[string]string,
) {
	if c == nil || c.telemetry == nil {
		return
	}

	var props map[string]string
	if propsBuilder != nil {
		props = propsBuilder()
	}

	c.telemetry.Emit(ctx, TelemetryEvent{
		Timestamp: time.Now().UTC(),
		Kind:      TelemetryKindCapture,
		Name:      name,
		UserID:    userID,
		AttemptID: attemptID,
		Channel:   channel.Kind.String(),
		Props:     props,
	})
}

func (c *Coordinator) emitBootstrapCompleted(
	ctx context.Context,
	userID string,
	attemptID string,
	channel credential.Channel,
	token string,
	params launchparams.Params,
) {
	c.emitCapture(ctx, telemetryEventBootstrapCompleted, userID, attemptID, channel, func() map[string]string {
		props := make(map[string]string, params.Len()+1)
		if c.config.Telemetry.CaptureRawToken {
			props["launch_token"] = token
		}
		for key, value := range params.Map() {
			props[string(key)] = value
		}
		return props
	})
}
