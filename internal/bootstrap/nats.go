package bootstrap

import (
	"github.com/nats-io/nats.go"
)

// InitNATS connects to the event broker. An empty URL disables eventing;
// the caller falls back to a no-op publisher.
func InitNATS(url string) (*nats.Conn, error) {
	if url == "" {
		return nil, nil
	}
	return nats.Connect(url, nats.Name("timebank-api"))
}
