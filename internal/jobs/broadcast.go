package jobs

import (
	"context"
	"errors"

	"injai_channel/internal/model"
	"injai_channel/internal/queue"
	"injai_channel/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Broadcaster sends a newsletter for an article
type Broadcaster interface {
	Broadcast(ctx context.Context, req model.BroadcastRequest) (*model.BroadcastResult, error)
}

// BroadcastProcessor handles newsletter jobs read from the broadcast stream
type BroadcastProcessor struct {
	newsletter Broadcaster
	log        zerolog.Logger
}

func NewBroadcastProcessor(newsletter Broadcaster, log zerolog.Logger) *BroadcastProcessor {
	return &BroadcastProcessor{newsletter: newsletter, log: log}
}

// Handle runs one broadcast. Jobs that can never succeed are dropped; any other error leaves
// the message pending so it is retried after the claim interval.
func (p *BroadcastProcessor) Handle(ctx context.Context, msg redis.XMessage) error {
	job, err := queue.ParseBroadcastJob(msg)
	if err != nil {
		p.log.Warn().Err(err).Str("message_id", msg.ID).Msg("dropping malformed broadcast job")
		return nil
	}

	result, err := p.newsletter.Broadcast(ctx, model.BroadcastRequest{
		ArticleID: job.ArticleID,
		Subject:   job.Subject,
		Content:   job.Content,
	})
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidInput) {
		p.log.Warn().Err(err).Str("article_id", job.ArticleID).Msg("dropping broadcast job")
		return nil
	}
	if err != nil {
		return err
	}

	p.log.Info().
		Str("message_id", msg.ID).
		Str("article_id", job.ArticleID).
		Int("success", result.Success).
		Int("failed", result.Failed).
		Msg("broadcast job done")
	return nil
}
