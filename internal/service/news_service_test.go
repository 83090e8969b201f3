package service

import (
	"context"
	"errors"
	"testing"

	"injai_channel/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsRequest(featured bool) model.NewsRequest {
	return model.NewsRequest{
		Title:    "Tour announced",
		Content:  "<p>Dates below</p>",
		Image:    "https://cdn.example/tour.jpg",
		Excerpt:  "Dates below",
		Author:   "Injai",
		Category: "events",
		Featured: &featured,
	}
}

func TestNewsService_Create_FeaturedEnqueuesBroadcast(t *testing.T) {
	repo := newFakeNewsRepo()
	q := &fakeQueue{}
	svc := NewNewsService(repo, q, zerolog.Nop())

	article, err := svc.Create(context.Background(), newsRequest(true))

	require.NoError(t, err)
	assert.Equal(t, "EVENTS", article.Category)
	assert.NotNil(t, article.Links)
	require.Len(t, q.jobs, 1)
	assert.Equal(t, article.ID, q.jobs[0].ArticleID)
	assert.Equal(t, "New Featured Article: Tour announced", q.jobs[0].Subject)
}

func TestNewsService_Create_NotFeatured(t *testing.T) {
	q := &fakeQueue{}
	svc := NewNewsService(newFakeNewsRepo(), q, zerolog.Nop())

	_, err := svc.Create(context.Background(), newsRequest(false))

	require.NoError(t, err)
	assert.Empty(t, q.jobs)
}

func TestNewsService_Create_QueueFailureIsNotFatal(t *testing.T) {
	repo := newFakeNewsRepo()
	svc := NewNewsService(repo, &fakeQueue{err: errors.New("redis unavailable")}, zerolog.Nop())

	article, err := svc.Create(context.Background(), newsRequest(true))

	require.NoError(t, err)
	assert.Contains(t, repo.articles, article.ID)
}

func TestNewsService_Create_NilQueue(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo(), nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), newsRequest(true))

	assert.NoError(t, err)
}

func TestNewsService_Create_MissingFields(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo(), nil, zerolog.Nop())
	req := newsRequest(false)
	req.Author = ""

	_, err := svc.Create(context.Background(), req)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Missing required fields", verr.Message)
}

func TestNewsService_List_CategoryAll(t *testing.T) {
	repo := newFakeNewsRepo()
	svc := NewNewsService(repo, nil, zerolog.Nop())

	all := "all"
	_, err := svc.List(context.Background(), model.NewsFilters{Category: &all})
	require.NoError(t, err)
	assert.Nil(t, repo.filters.Category)

	music := "music"
	_, err = svc.List(context.Background(), model.NewsFilters{Category: &music})
	require.NoError(t, err)
	require.NotNil(t, repo.filters.Category)
	assert.Equal(t, "MUSIC", *repo.filters.Category)
}

func TestNewsService_Update_Partial(t *testing.T) {
	repo := newFakeNewsRepo()
	svc := NewNewsService(repo, nil, zerolog.Nop())
	article, err := svc.Create(context.Background(), newsRequest(true))
	require.NoError(t, err)

	off := false
	updated, err := svc.Update(context.Background(), model.NewsRequest{ID: article.ID, Title: "Tour moved", Featured: &off})

	require.NoError(t, err)
	assert.Equal(t, "Tour moved", updated.Title)
	assert.Equal(t, "Injai", updated.Author)
	assert.False(t, updated.Featured)

	_, err = svc.Update(context.Background(), model.NewsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), model.NewsRequest{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsService_GetAndDelete(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo(), nil, zerolog.Nop())
	article, err := svc.Create(context.Background(), newsRequest(false))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Title, got.Title)

	require.NoError(t, svc.Delete(context.Background(), article.ID))
	_, err = svc.Get(context.Background(), article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsService_Create_FeaturedWithoutQueue(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo(), nil, zerolog.Nop())

	article, err := svc.Create(context.Background(), newsRequest(true))

	require.NoError(t, err)
	assert.NotEmpty(t, article.ID)
}
