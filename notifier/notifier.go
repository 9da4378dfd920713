// Package notifier is the client of the realtime invalidation channel. Every
// session publishes after a status change and refreshes its list on receipt.
// The channel is a best-effort hint, not an ordered log: duplicate or missed
// messages are tolerated because every refresh is a full replacement.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"clientregistro/monitoring"
)

// Channel carries status-updated events, one per successful status change.
const Channel = "estatusActualizado"

type Notifier struct {
	client   *redis.Client
	pubsub   *redis.PubSub
	shutdown chan struct{}
	log      *logrus.Entry
}

func New(addr, password string, db int) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Notifier{
		client:   client,
		shutdown: make(chan struct{}),
		log:      logrus.WithField("component", "notifier"),
	}, nil
}

// PublishStatusUpdated broadcasts a status-updated event to every connected
// session, the publishing one included.
func (n *Notifier) PublishStatusUpdated(ctx context.Context) error {
	if err := n.client.Publish(ctx, Channel, "actualizado").Err(); err != nil {
		return fmt.Errorf("publish status update: %w", err)
	}
	monitoring.Notifications.WithLabelValues("published").Inc()
	return nil
}

// Start subscribes to the channel and invokes handler for every event until
// Stop is called or ctx is cancelled.
func (n *Notifier) Start(ctx context.Context, handler func()) {
	n.pubsub = n.client.Subscribe(ctx, Channel)
	n.log.Info("subscribed to status updates")

	go func() {
		ch := n.pubsub.Channel()
		for {
			select {
			case <-n.shutdown:
				return
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				monitoring.Notifications.WithLabelValues("received").Inc()
				n.log.WithField("payload", msg.Payload).Debug("status update received")
				handler()
			}
		}
	}()
}

// Stop unsubscribes and closes the connection.
func (n *Notifier) Stop() {
	close(n.shutdown)
	if n.pubsub != nil {
		if err := n.pubsub.Close(); err != nil {
			n.log.WithError(err).Warn("error closing subscription")
		}
	}
	if err := n.client.Close(); err != nil {
		n.log.WithError(err).Warn("error closing Redis connection")
	}
}

// Ping reports channel availability for the health endpoint.
func (n *Notifier) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return n.client.Ping(ctx).Err()
}
