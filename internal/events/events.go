// Package events broadcasts resource-change events so admin UIs can refetch
// their lists after a mutation from another session.
package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const Channel = "resource_events"

// Event names what changed. Resource matches the cache key / query key the
// client holds ("users", "roles", "students", ...).
type Event struct {
	Resource string `json:"resource"`
	Action   string `json:"action"` // created / updated / deleted
	ID       string `json:"id"`
}

type Publisher interface {
	Publish(ctx context.Context, resource, action, id string)
}

type redisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, resource, action, id string) {
	payload, err := json.Marshal(Event{Resource: resource, Action: action, ID: id})
	if err != nil {
		return
	}
	// Fire and forget, a dropped event only delays a refetch
	p.client.Publish(ctx, Channel, payload)
}

type noopPublisher struct{}

// NewNoopPublisher is used when Redis is not configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, resource, action, id string) {}
