package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"injai_channel/internal/model"
	"injai_channel/internal/repository"

	"golang.org/x/net/html"
)

const maxPreviewBody = 1 << 20

// PreviewService builds link cards for internal records and external pages
type PreviewService interface {
	Preview(ctx context.Context, req model.PreviewRequest) (*model.Preview, error)
}

type previewService struct {
	news    repository.NewsRepository
	artists repository.ArtistRepository
	videos  repository.VideoRepository
	events  repository.EventRepository
	client  *http.Client
}

// NewPreviewService creates a new PreviewService
func NewPreviewService(news repository.NewsRepository, artists repository.ArtistRepository, videos repository.VideoRepository, events repository.EventRepository) PreviewService {
	return &previewService{
		news:    news,
		artists: artists,
		videos:  videos,
		events:  events,
		client:  newPublicHTTPClient(5 * time.Second),
	}
}

var errNonPublicAddress = errors.New("refusing to fetch non-public address")

// carrierGradeNAT is 100.64.0.0/10, shared address space that net.IP does not flag as private.
var carrierGradeNAT = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

// newPublicHTTPClient dials only public unicast addresses. The check runs on the resolved
// address of every connection, redirects included, so DNS names pointing inward are refused too.
func newPublicHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: timeout,
		Control: func(network, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			if ip := net.ParseIP(host); ip == nil || !isPublicIP(ip) {
				return fmt.Errorf("%w: %s", errNonPublicAddress, host)
			}
			return nil
		},
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               nil,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: timeout,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func isPublicIP(ip net.IP) bool {
	return !ip.IsLoopback() &&
		!ip.IsPrivate() &&
		!ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast() &&
		!ip.IsInterfaceLocalMulticast() &&
		!ip.IsMulticast() &&
		!carrierGradeNAT.Contains(ip)
}

func (s *previewService) Preview(ctx context.Context, req model.PreviewRequest) (*model.Preview, error) {
	if req.URL == "" {
		return nil, invalid("URL is required")
	}

	var (
		preview *model.Preview
		err     error
	)
	switch {
	case req.Type == "news" && req.ID != "":
		preview, err = s.newsPreview(ctx, req)
	case req.Type == "artist" && req.ID != "":
		preview, err = s.artistPreview(ctx, req)
	case req.Type == "video" && req.ID != "":
		preview, err = s.videoPreview(ctx, req)
	case req.Type == "event" && req.ID != "":
		preview, err = s.eventPreview(ctx, req)
	default:
		preview = s.externalPreview(ctx, req.URL)
	}
	if err != nil {
		return nil, err
	}
	if preview == nil {
		return nil, ErrNoPreview
	}
	return preview, nil
}

func (s *previewService) newsPreview(ctx context.Context, req model.PreviewRequest) (*model.Preview, error) {
	article, err := s.news.FindByID(ctx, req.ID)
	if err != nil || article == nil {
		return nil, err
	}
	return &model.Preview{Title: article.Title, Description: article.Excerpt, Image: article.Image, URL: req.URL, Type: "news"}, nil
}

func (s *previewService) artistPreview(ctx context.Context, req model.PreviewRequest) (*model.Preview, error) {
	artist, err := s.artists.FindByID(ctx, req.ID)
	if err != nil || artist == nil {
		return nil, err
	}
	return &model.Preview{Title: artist.Name, Description: artist.Bio, Image: artist.Image, URL: req.URL, Type: "artist"}, nil
}

func (s *previewService) videoPreview(ctx context.Context, req model.PreviewRequest) (*model.Preview, error) {
	video, err := s.videos.FindByID(ctx, req.ID)
	if err != nil || video == nil {
		return nil, err
	}
	p := &model.Preview{Title: video.Title, Description: video.Description, Image: video.Thumbnail, URL: req.URL, Type: "video"}
	if video.ArtistName != nil {
		p.Artist = *video.ArtistName
	}
	return p, nil
}

func (s *previewService) eventPreview(ctx context.Context, req model.PreviewRequest) (*model.Preview, error) {
	event, err := s.events.FindByID(ctx, req.ID)
	if err != nil || event == nil {
		return nil, err
	}
	date := event.Date
	return &model.Preview{Title: event.Title, Description: event.Description, Image: event.Image, URL: req.URL, Type: "event", Date: &date}, nil
}

// externalPreview fetches the page and reads its title and meta tags. Any failure yields nil.
func (s *previewService) externalPreview(ctx context.Context, rawURL string) *model.Preview {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; LinkPreviewBot/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	meta := parsePageMeta(io.LimitReader(resp.Body, maxPreviewBody))
	return &model.Preview{
		Title:       firstNonEmpty(meta["og:title"], meta["title"], "Link Preview"),
		Description: firstNonEmpty(meta["og:description"], meta["description"]),
		Image:       firstNonEmpty(meta["og:image"], meta["twitter:image"]),
		URL:         rawURL,
		Type:        "external",
	}
}

// parsePageMeta collects <title> and the content of <meta name|property=...> tags in <head>.
func parsePageMeta(r io.Reader) map[string]string {
	meta := make(map[string]string)
	z := html.NewTokenizer(r)
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return meta
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch t.Data {
			case "title":
				inTitle = true
			case "meta":
				var key, content string
				for _, a := range t.Attr {
					switch strings.ToLower(a.Key) {
					case "name", "property":
						key = strings.ToLower(a.Val)
					case "content":
						content = strings.TrimSpace(a.Val)
					}
				}
				if key != "" && content != "" {
					if _, seen := meta[key]; !seen {
						meta[key] = content
					}
				}
			case "body":
				return meta
			}
		case html.TextToken:
			if inTitle {
				if _, seen := meta["title"]; !seen {
					meta["title"] = strings.TrimSpace(string(z.Text()))
				}
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "title" {
				inTitle = false
			}
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
