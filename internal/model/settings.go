package model

import (
	"encoding/json"
	"time"
)

// SiteSettings holds the editable blocks of the public site. The blocks are free-form JSON
// owned by the frontend.
type SiteSettings struct {
	ID               string          `json:"id,omitempty"`
	SocialLinks      json.RawMessage `json:"socialLinks"`
	Team             json.RawMessage `json:"team"`
	GetInTouch       map[string]any  `json:"getInTouch"`
	FeaturedPlaylist json.RawMessage `json:"featuredPlaylist"`
	UpdatedAt        *time.Time      `json:"updatedAt,omitempty"`
}

// DefaultSiteSettings is returned before an admin has saved anything.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SocialLinks:      json.RawMessage(`[]`),
		Team:             json.RawMessage(`[]`),
		GetInTouch:       map[string]any{},
		FeaturedPlaylist: json.RawMessage(`{}`),
	}
}

// SettingsUpdate is a partial update; nil fields are left as they are.
type SettingsUpdate struct {
	SocialLinks      json.RawMessage `json:"socialLinks"`
	Team             json.RawMessage `json:"team"`
	GetInTouch       map[string]any  `json:"getInTouch"`
	FeaturedPlaylist json.RawMessage `json:"featuredPlaylist"`
}

// ContactRequest is a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// PreviewRequest asks for a link card for an internal record or an external URL
type PreviewRequest struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Preview struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	URL         string     `json:"url"`
	Type        string     `json:"type"`
	Artist      string     `json:"artist,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// DashboardCounts feeds the admin landing page
type DashboardCounts struct {
	Artists     int
	Videos      int
	Events      int
	News        int
	Subscribers int
}
