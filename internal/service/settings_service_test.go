package service

import (
	"context"
	"encoding/json"
	"testing"

	"injai_channel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	settings, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(settings.SocialLinks))
	assert.JSONEq(t, `{}`, string(settings.FeaturedPlaylist))
	assert.Empty(t, settings.GetInTouch)
}

func TestSettingsService_Update_MergesGetInTouch(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.SiteSettings{
		ID:               "s-1",
		SocialLinks:      json.RawMessage(`[{"name":"YouTube"}]`),
		Team:             json.RawMessage(`[]`),
		GetInTouch:       map[string]any{"email": "hello@injai.example", "phone": "+1"},
		FeaturedPlaylist: json.RawMessage(`{}`),
	}}
	svc := NewSettingsService(repo)

	settings, err := svc.Update(context.Background(), model.SettingsUpdate{
		Team:       json.RawMessage(`[{"name":"Ana"}]`),
		GetInTouch: map[string]any{"phone": "+2", "address": "Main St"},
	})

	require.NoError(t, err)
	assert.Equal(t, "s-1", settings.ID)
	assert.JSONEq(t, `[{"name":"YouTube"}]`, string(settings.SocialLinks))
	assert.JSONEq(t, `[{"name":"Ana"}]`, string(settings.Team))
	assert.Equal(t, map[string]any{"email": "hello@injai.example", "phone": "+2", "address": "Main St"}, settings.GetInTouch)
	assert.Equal(t, 1, repo.saves)
}

func TestSettingsService_Update_FirstSave(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.Update(context.Background(), model.SettingsUpdate{
		FeaturedPlaylist: json.RawMessage(`{"id":"PL123"}`),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, settings.ID)
	require.NotNil(t, repo.settings)
	assert.JSONEq(t, `{"id":"PL123"}`, string(repo.settings.FeaturedPlaylist))
}
