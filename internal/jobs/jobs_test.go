package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBroadcaster struct {
	requests []model.BroadcastRequest
	err      error
}

func (f *fakeBroadcaster) Broadcast(_ context.Context, req model.BroadcastRequest) (*model.BroadcastResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &model.BroadcastResult{Success: 2}, nil
}

func broadcastMessage() redis.XMessage {
	return redis.XMessage{ID: "1-0", Values: map[string]any{
		"type":       "newsletter_broadcast",
		"article_id": "n-1",
		"subject":    "Tour",
		"content":    "<p>Dates</p>",
	}}
}

func TestBroadcastProcessor_Handle(t *testing.T) {
	b := &fakeBroadcaster{}
	p := NewBroadcastProcessor(b, zerolog.Nop())

	require.NoError(t, p.Handle(context.Background(), broadcastMessage()))

	require.Len(t, b.requests, 1)
	assert.Equal(t, model.BroadcastRequest{ArticleID: "n-1", Subject: "Tour", Content: "<p>Dates</p>"}, b.requests[0])
}

func TestBroadcastProcessor_DropsMalformed(t *testing.T) {
	b := &fakeBroadcaster{}
	p := NewBroadcastProcessor(b, zerolog.Nop())

	err := p.Handle(context.Background(), redis.XMessage{ID: "1-0", Values: map[string]any{"type": "cleanup"}})

	assert.NoError(t, err)
	assert.Empty(t, b.requests)
}

func TestBroadcastProcessor_DropsMissingArticle(t *testing.T) {
	p := NewBroadcastProcessor(&fakeBroadcaster{err: service.ErrNotFound}, zerolog.Nop())

	assert.NoError(t, p.Handle(context.Background(), broadcastMessage()))
}

func TestBroadcastProcessor_RetriesOnFailure(t *testing.T) {
	p := NewBroadcastProcessor(&fakeBroadcaster{err: errors.New("db down")}, zerolog.Nop())

	assert.Error(t, p.Handle(context.Background(), broadcastMessage()))
}

type fakeCompleter struct {
	at  time.Time
	err error
}

func (f *fakeCompleter) CompletePast(_ context.Context, now time.Time) (int64, error) {
	f.at = now
	return 3, f.err
}

func TestScheduler_CompletePastEvents(t *testing.T) {
	events := &fakeCompleter{}
	s := NewScheduler(events, zerolog.Nop())
	fixed := time.Date(2024, 6, 10, 12, 5, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.completePastEvents()

	assert.Equal(t, fixed, events.at)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(&fakeCompleter{}, zerolog.Nop())

	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}
