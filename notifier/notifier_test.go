package notifier

import (
	"context"
	"os"
	"testing"
	"time"
)

// Needs a reachable Redis; skipped otherwise so the suite stays runnable
// without infrastructure.
func TestPublishReachesSubscriber(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	n, err := New(addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	defer n.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan struct{}, 1)
	n.Start(ctx, func() {
		select {
		case received <- struct{}{}:
		default:
		}
	})

	// Subscription setup races the publish; give it a moment.
	time.Sleep(200 * time.Millisecond)

	if err := n.PublishStatusUpdated(ctx); err != nil {
		t.Fatalf("PublishStatusUpdated: %v", err)
	}

	select {
	case <-received:
	case <-time.After(3 * time.Second):
		t.Fatal("notification never reached the subscriber")
	}
}
