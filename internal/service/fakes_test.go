package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"injai_channel/internal/mailer"
	"injai_channel/internal/model"
	"injai_channel/internal/queue"
	"injai_channel/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if (email != "" && u.Email == email) || (username != "" && u.Username == username) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []model.User{}
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && (u.Email == user.Email || u.Username == user.Username) {
			return repository.ErrDuplicate
		}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeArtistRepo struct {
	artists map[string]*model.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: map[string]*model.Artist{}}
}

func (r *fakeArtistRepo) Create(_ context.Context, a *model.Artist) error {
	a.ID = uuid.NewString()
	stored := *a
	r.artists[a.ID] = &stored
	return nil
}

func (r *fakeArtistRepo) FindByID(_ context.Context, id string) (*model.Artist, error) {
	if a, ok := r.artists[id]; ok {
		found := *a
		return &found, nil
	}
	return nil, nil
}

func (r *fakeArtistRepo) List(_ context.Context, filters model.ArtistFilters) ([]model.Artist, error) {
	artists := []model.Artist{}
	for _, a := range r.artists {
		if filters.Category != nil && a.Category != *filters.Category {
			continue
		}
		artists = append(artists, *a)
	}
	return artists, nil
}

func (r *fakeArtistRepo) Update(_ context.Context, a *model.Artist) error {
	if _, ok := r.artists[a.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *a
	r.artists[a.ID] = &stored
	return nil
}

func (r *fakeArtistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.artists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.artists, id)
	return nil
}

func (r *fakeArtistRepo) CountByCategory(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, a := range r.artists {
		counts[a.Category]++
	}
	return counts, nil
}

type fakeVideoRepo struct {
	videos map[string]*model.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: map[string]*model.Video{}}
}

func (r *fakeVideoRepo) Create(_ context.Context, v *model.Video) error {
	v.ID = uuid.NewString()
	stored := *v
	r.videos[v.ID] = &stored
	return nil
}

func (r *fakeVideoRepo) FindByID(_ context.Context, id string) (*model.Video, error) {
	if v, ok := r.videos[id]; ok {
		found := *v
		return &found, nil
	}
	return nil, nil
}

func (r *fakeVideoRepo) List(_ context.Context, _ model.VideoFilters) ([]model.Video, error) {
	videos := []model.Video{}
	for _, v := range r.videos {
		videos = append(videos, *v)
	}
	return videos, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, v *model.Video) error {
	if _, ok := r.videos[v.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *v
	r.videos[v.ID] = &stored
	return nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.videos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.videos, id)
	return nil
}

type fakeEventRepo struct {
	events map[string]*model.Event
	cutoff time.Time
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*model.Event{}}
}

func (r *fakeEventRepo) Create(_ context.Context, e *model.Event) error {
	e.ID = uuid.NewString()
	e.LegacyID = e.ID
	stored := *e
	r.events[e.ID] = &stored
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := r.events[id]; ok {
		found := *e
		return &found, nil
	}
	return nil, nil
}

func (r *fakeEventRepo) List(_ context.Context, _ model.EventFilters) ([]model.Event, error) {
	events := []model.Event{}
	for _, e := range r.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *model.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *e
	r.events[e.ID] = &stored
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) CompleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	var n int64
	for _, e := range r.events {
		if e.Status == model.EventStatusUpcoming && e.Date.Before(cutoff) {
			e.Status = model.EventStatusCompleted
			n++
		}
	}
	return n, nil
}

type fakeNewsRepo struct {
	articles map[string]*model.NewsArticle
	filters  model.NewsFilters
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{articles: map[string]*model.NewsArticle{}}
}

func (r *fakeNewsRepo) Create(_ context.Context, n *model.NewsArticle) error {
	n.ID = uuid.NewString()
	n.PublishedAt = time.Now()
	stored := *n
	r.articles[n.ID] = &stored
	return nil
}

func (r *fakeNewsRepo) FindByID(_ context.Context, id string) (*model.NewsArticle, error) {
	if n, ok := r.articles[id]; ok {
		found := *n
		return &found, nil
	}
	return nil, nil
}

func (r *fakeNewsRepo) List(_ context.Context, filters model.NewsFilters) ([]model.NewsArticle, error) {
	r.filters = filters
	articles := []model.NewsArticle{}
	for _, n := range r.articles {
		articles = append(articles, *n)
	}
	return articles, nil
}

func (r *fakeNewsRepo) Update(_ context.Context, n *model.NewsArticle) error {
	if _, ok := r.articles[n.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *n
	r.articles[n.ID] = &stored
	return nil
}

func (r *fakeNewsRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

type fakeNewsletterRepo struct {
	subs map[string]*model.NewsletterSubscription
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subs: map[string]*model.NewsletterSubscription{}}
}

func (r *fakeNewsletterRepo) Create(_ context.Context, s *model.NewsletterSubscription) error {
	for _, existing := range r.subs {
		if existing.Email == s.Email {
			return repository.ErrDuplicate
		}
	}
	s.ID = uuid.NewString()
	stored := *s
	r.subs[s.ID] = &stored
	return nil
}

func (r *fakeNewsletterRepo) FindByEmail(_ context.Context, email string) (*model.NewsletterSubscription, error) {
	for _, s := range r.subs {
		if s.Email == email {
			found := *s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsletterRepo) Reactivate(_ context.Context, s *model.NewsletterSubscription) error {
	stored, ok := r.subs[s.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = model.SubscriptionActive
	if s.Name != nil {
		stored.Name = s.Name
	}
	stored.Source = s.Source
	s.Status = stored.Status
	return nil
}

func (r *fakeNewsletterRepo) SetStatus(_ context.Context, id, status string) (*model.NewsletterSubscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.Status = status
	found := *s
	return &found, nil
}

func (r *fakeNewsletterRepo) List(_ context.Context) ([]model.NewsletterSubscription, error) {
	subs := []model.NewsletterSubscription{}
	for _, s := range r.subs {
		subs = append(subs, *s)
	}
	return subs, nil
}

func (r *fakeNewsletterRepo) ListActive(_ context.Context) ([]model.NewsletterSubscription, error) {
	subs := []model.NewsletterSubscription{}
	for _, s := range r.subs {
		if s.Status == model.SubscriptionActive {
			subs = append(subs, *s)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Email < subs[j].Email })
	return subs, nil
}

func (r *fakeNewsletterRepo) Stats(_ context.Context) (*model.SubscriberStats, error) {
	stats := &model.SubscriberStats{}
	for _, s := range r.subs {
		stats.Total++
		switch s.Status {
		case model.SubscriptionActive:
			stats.Active++
		case model.SubscriptionUnsubscribed:
			stats.Unsubscribed++
		}
	}
	return stats, nil
}

func (r *fakeNewsletterRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.subs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.subs, id)
	return nil
}

type fakeSettingsRepo struct {
	settings *model.SiteSettings
	saves    int
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*model.SiteSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *model.SiteSettings) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	copied := *s
	r.settings = &copied
	r.saves++
	return nil
}

// fakeSender records messages and fails for addresses listed in failFor
type fakeSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]bool
	err     error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.failFor[msg.To] {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeQueue struct {
	jobs []queue.BroadcastJob
	err  error
}

func (q *fakeQueue) EnqueueBroadcast(_ context.Context, job queue.BroadcastJob) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type fakeThumbnails struct {
	calls int
}

func (f *fakeThumbnails) Thumbnail(_ context.Context, videoID string) string {
	f.calls++
	return "https://thumbs.example/" + videoID + ".jpg"
}

type fakeStore struct {
	key         string
	contentType string
	body        []byte
}

func (s *fakeStore) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.key = key
	s.contentType = contentType
	s.body = body
	return "https://cdn.example/" + key, nil
}
