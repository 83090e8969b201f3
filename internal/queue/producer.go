package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const jobTypeBroadcast = "newsletter_broadcast"

// BroadcastJob asks the worker to mail an article to every active subscriber
type BroadcastJob struct {
	ArticleID string
	Subject   string
	Content   string
}

// Producer appends jobs to a redis stream
type Producer struct {
	client *redis.Client
	stream string
}

func NewProducer(client *redis.Client, stream string) *Producer {
	return &Producer{client: client, stream: stream}
}

// EnqueueBroadcast adds a broadcast job to the stream
func (p *Producer) EnqueueBroadcast(ctx context.Context, job BroadcastJob) error {
	if p == nil || p.client == nil {
		return errors.New("broadcast queue is not configured")
	}
	_, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: job.values(),
	}).Result()
	if err != nil {
		return fmt.Errorf("enqueue broadcast: %w", err)
	}
	return nil
}

func (j BroadcastJob) values() map[string]any {
	return map[string]any{
		"type":       jobTypeBroadcast,
		"article_id": j.ArticleID,
		"subject":    j.Subject,
		"content":    j.Content,
	}
}

// ParseBroadcastJob decodes a stream message written by EnqueueBroadcast
func ParseBroadcastJob(msg redis.XMessage) (BroadcastJob, error) {
	if t, _ := msg.Values["type"].(string); t != jobTypeBroadcast {
		return BroadcastJob{}, fmt.Errorf("unexpected job type %q", msg.Values["type"])
	}
	job := BroadcastJob{}
	job.ArticleID, _ = msg.Values["article_id"].(string)
	job.Subject, _ = msg.Values["subject"].(string)
	job.Content, _ = msg.Values["content"].(string)
	if job.ArticleID == "" {
		return BroadcastJob{}, errors.New("broadcast job without article id")
	}
	return job, nil
}
