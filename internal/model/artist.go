package model

import "time"

const (
	ArtistCategoryPioneers      = "pioneers"
	ArtistCategoryCollaborators = "collaborators"
	ArtistCategoryEmerging      = "emerging"
)

// Artist is a performer featured on the site
type Artist struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	Category       string    `json:"category"`
	Image          string    `json:"image"`
	Thumbnail      string    `json:"thumbnail"`
	YearsActive    int       `json:"yearsActive"`
	TracksReleased int       `json:"tracksReleased"`
	Streams        int64     `json:"streams"`
	YouTube        *string   `json:"youtube"`
	Instagram      *string   `json:"instagram"`
	Twitter        *string   `json:"twitter"`
	TikTok         *string   `json:"tiktok"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ArtistStats struct {
	YearsActive    int   `json:"yearsActive"`
	TracksReleased int   `json:"tracksReleased"`
	Streams        int64 `json:"streams"`
}

type ArtistSocialLinks struct {
	YouTube   *string `json:"youtube,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
}

// ArtistView is the public listing shape; _id is kept for older site components.
type ArtistView struct {
	ID          string            `json:"id"`
	LegacyID    string            `json:"_id"`
	Name        string            `json:"name"`
	Bio         string            `json:"bio"`
	Category    string            `json:"category"`
	Image       string            `json:"image"`
	Thumbnail   string            `json:"thumbnail"`
	Stats       ArtistStats       `json:"stats"`
	SocialLinks ArtistSocialLinks `json:"socialLinks"`
	Featured    bool              `json:"featured"`
}

func (a *Artist) View() ArtistView {
	return ArtistView{
		ID:        a.ID,
		LegacyID:  a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		Category:  a.Category,
		Image:     a.Image,
		Thumbnail: a.Thumbnail,
		Stats: ArtistStats{
			YearsActive:    a.YearsActive,
			TracksReleased: a.TracksReleased,
			Streams:        a.Streams,
		},
		SocialLinks: ArtistSocialLinks{
			YouTube:   a.YouTube,
			Instagram: a.Instagram,
			Twitter:   a.Twitter,
			TikTok:    a.TikTok,
		},
		Featured: a.Featured,
	}
}

// ArtistRequest is the create/update payload sent by the admin panel
type ArtistRequest struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Bio         string            `json:"bio"`
	Category    string            `json:"category"`
	Image       string            `json:"image"`
	Thumbnail   string            `json:"thumbnail"`
	Stats       ArtistStats       `json:"stats"`
	SocialLinks ArtistSocialLinks `json:"socialLinks"`
	Featured    bool              `json:"featured"`
}

type ArtistFilters struct {
	Category *string
	Featured bool
	Limit    int
}

// ArtistCategory is one entry of the category picker with its artist count
type ArtistCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
