// Package events fans request-lifecycle events out over NATS so
// notification consumers can react without coupling to the API. Publishing
// is best-effort: a failed publish is logged, never surfaced to the caller.
package events

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/bancotempo/timebank-backend/pkg/logger"
)

const subjectPrefix = "timebank."

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any)
}

type natsPublisher struct {
	nc *nats.Conn
}

func NewNATS(nc *nats.Conn) *natsPublisher {
	return &natsPublisher{nc: nc}
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, payload any) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to encode event", "subject", subject, "error", err)
		return
	}
	if err := p.nc.Publish(subjectPrefix+subject, data); err != nil {
		log.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

// Noop is used when no NATS URL is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) {}
