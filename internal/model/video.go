package model

import "time"

// Video is a YouTube video attached (optionally) to an artist
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	YouTubeID   string    `json:"youtubeId"`
	Category    string    `json:"category"`
	UploadDate  time.Time `json:"uploadDate"`
	Thumbnail   string    `json:"thumbnail"`
	Featured    bool      `json:"featured"`
	Views       int64     `json:"views"`
	ArtistID    *string   `json:"artistId"`
	ArtistName  *string   `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type VideoArtist struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// VideoView is the public listing shape
type VideoView struct {
	ID          string      `json:"id"`
	LegacyID    string      `json:"_id"`
	Title       string      `json:"title"`
	Artist      VideoArtist `json:"artist"`
	Description string      `json:"description"`
	YouTubeID   string      `json:"youtubeId"`
	Category    string      `json:"category"`
	Year        string      `json:"year"`
	Views       string      `json:"views"`
	UploadDate  time.Time   `json:"uploadDate"`
	Thumbnail   string      `json:"thumbnail"`
	Featured    bool        `json:"featured"`
}

// VideoRequest is the create/update payload; YouTubeID may also be a full video URL.
type VideoRequest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	YouTubeID   string     `json:"youtubeId"`
	Category    string     `json:"category"`
	UploadDate  *time.Time `json:"uploadDate"`
	Thumbnail   string     `json:"thumbnail"`
	Featured    bool       `json:"featured"`
	Views       int64      `json:"views"`
	ArtistID    string     `json:"artistId"`
}

type VideoFilters struct {
	Category *string
	Featured bool
	ArtistID *string
	Limit    int
}
