package model

import "time"

const (
	SubscriptionActive       = "active"
	SubscriptionUnsubscribed = "unsubscribed"
	SubscriptionBounced      = "bounced"
)

// ValidSubscriptionStatus reports whether status can be set by an admin.
func ValidSubscriptionStatus(status string) bool {
	switch status {
	case SubscriptionActive, SubscriptionUnsubscribed, SubscriptionBounced:
		return true
	}
	return false
}

// NewsletterSubscription is one email address on the mailing list
type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SubscribeRequest struct {
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Source string  `json:"source"`
}

type BroadcastRequest struct {
	ArticleID string `json:"articleId"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
}

// BroadcastResult tallies a newsletter send
type BroadcastResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type SubscriberStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Unsubscribed int `json:"unsubscribed"`
}
