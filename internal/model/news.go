package model

import "time"

// NewsLink is a call-to-action link rendered under an article
type NewsLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// NewsArticle is a published post; Content is HTML
type NewsArticle struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Image       string     `json:"image"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Category    string     `json:"category"`
	Featured    bool       `json:"featured"`
	Links       []NewsLink `json:"links"`
	PublishedAt time.Time  `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewsRequest is the create payload and, for updates, a partial patch: empty fields keep
// their stored value.
type NewsRequest struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Image    string     `json:"image"`
	Excerpt  string     `json:"excerpt"`
	Author   string     `json:"author"`
	Category string     `json:"category"`
	Featured *bool      `json:"featured"`
	Links    []NewsLink `json:"links"`
}

type NewsFilters struct {
	Category *string
	Featured bool
}
