package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/hibiken/asynq"

	"github.com/innovators-conclave/backend/internal/queue/task"
)

type ctxKey int

const (
	_ ctxKey = iota
	asyncQCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// GetClient returns the global Client, which can be reconfigured with SetClient.
// It's safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	c := ctx.Value(asyncQCtxKey)
	if c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}

		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global Client, and returns a
// function to restore the original value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}

// EmailQueue enqueues outgoing mail tasks onto the asynq queue.
type EmailQueue struct{}

func NewEmailQueue(client *asynq.Client) *EmailQueue {
	SetClient(client)
	return &EmailQueue{}
}

func (q *EmailQueue) EnqueueVerificationEmail(ctx context.Context, email string, code string) error {
	t, err := task.NewSendVerificationEmailTask(email, code)
	if err != nil {
		return fmt.Errorf("build verification email task failed: %w", err)
	}

	client := GetClient(ctx)
	if client == nil {
		return fmt.Errorf("asynq client is not configured")
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue verification email task failed: %w", err)
	}

	return nil
}
