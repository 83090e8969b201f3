package queue

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBroadcastJob_RoundTrip(t *testing.T) {
	job := BroadcastJob{ArticleID: "a1", Subject: "New drop", Content: "<p>Out now</p>"}

	parsed, err := ParseBroadcastJob(redis.XMessage{ID: "1-0", Values: job.values()})

	require.NoError(t, err)
	assert.Equal(t, job, parsed)
}

func TestParseBroadcastJob_WrongType(t *testing.T) {
	_, err := ParseBroadcastJob(redis.XMessage{ID: "1-0", Values: map[string]any{"type": "cleanup"}})
	assert.Error(t, err)
}

func TestParseBroadcastJob_MissingArticle(t *testing.T) {
	_, err := ParseBroadcastJob(redis.XMessage{ID: "1-0", Values: map[string]any{"type": jobTypeBroadcast}})
	assert.Error(t, err)
}

func TestProducer_Unconfigured(t *testing.T) {
	var p *Producer
	assert.Error(t, p.EnqueueBroadcast(context.Background(), BroadcastJob{ArticleID: "a1"}))
}
