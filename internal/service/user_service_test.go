package service

import (
	"context"
	"testing"

	"injai_channel/internal/model"
	"injai_channel/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_DefaultsToUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "editor", Email: "Editor@x.com", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, "editor@x.com", user.Email)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "editor", Email: "editor@x.com", Password: "secret1", Role: "owner",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@x.com", "secret1", model.RoleAdmin)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "alice", Email: "new@x.com", Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, 1, repo.count())
}

func TestUserService_Update(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@x.com", "secret1", model.RoleUser)
	seedUser(t, repo, "bob", "bob@x.com", "secret1", model.RoleUser)
	svc := NewUserService(repo)

	updated, err := svc.Update(context.Background(), alice.ID, model.UpdateUserRequest{
		Role: model.RoleAdmin, NewPassword: "changed1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.True(t, utils.CheckPasswordHash("changed1", updated.PasswordHash))

	_, err = svc.Update(context.Background(), alice.ID, model.UpdateUserRequest{Username: "bob"})
	assert.ErrorIs(t, err, ErrUsernameOrEmailTaken)

	_, err = svc.Update(context.Background(), "missing", model.UpdateUserRequest{Username: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Delete_Self(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@x.com", "secret1", model.RoleAdmin)
	svc := NewUserService(repo)

	err := svc.Delete(context.Background(), alice.ID, alice.ID)

	assert.ErrorIs(t, err, ErrCannotDeleteSelf)
	assert.Equal(t, 1, repo.count())
}

func TestUserService_Delete(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@x.com", "secret1", model.RoleAdmin)
	bob := seedUser(t, repo, "bob", "bob@x.com", "secret1", model.RoleUser)
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), alice.ID, bob.ID))
	assert.Equal(t, 1, repo.count())

	assert.ErrorIs(t, svc.Delete(context.Background(), alice.ID, bob.ID), ErrNotFound)
}

func TestUserService_List_HidesPasswordHash(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@x.com", "secret1", model.RoleAdmin)
	svc := NewUserService(repo)

	views, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "alice", views[0].Username)
}
