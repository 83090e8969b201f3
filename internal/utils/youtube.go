package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var youTubeURLPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractYouTubeID returns the 11 character video id from a YouTube URL, or "" when the
// URL does not carry one.
func ExtractYouTubeID(url string) string {
	match := youTubeURLPattern.FindStringSubmatch(url)
	if len(match) < 3 || len(match[2]) != 11 {
		return ""
	}
	return match[2]
}

// NormalizeYouTubeID accepts either a bare id or any YouTube URL form.
func NormalizeYouTubeID(value string) string {
	value = strings.TrimSpace(value)
	if id := ExtractYouTubeID(value); id != "" {
		return id
	}
	return value
}

// YouTubeThumbnail is the static thumbnail URL for a video id.
func YouTubeThumbnail(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}

// ViewsLabel renders a view count the way the public site lists it, e.g. "202,000+ views".
func ViewsLabel(views int64) string {
	if views <= 0 {
		return "Unknown views"
	}
	digits := strconv.FormatInt(views, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "+ views"
}
