package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	users   map[int64]*model.User
	updates int
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	user.ID = int64(len(f.users) + 1)
	f.users[user.TelegramID] = user
	return nil
}

func (f *fakeUserStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	return f.users[telegramID], nil
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	f.updates++
	f.users[user.TelegramID] = user
	return nil
}

func TestUserService_RegisterUser(t *testing.T) {
	store := &fakeUserStore{users: make(map[int64]*model.User)}
	svc := NewUserService(store, zap.NewNop())
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, 100, "teacher", "Anna", "", "ru")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	again, err := svc.RegisterUser(ctx, 100, "teacher_anna", "Anna", "K", "ru")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "teacher_anna", again.Username)
	assert.Equal(t, 1, store.updates)
}

func TestUserService_GetByTelegramID(t *testing.T) {
	store := &fakeUserStore{users: make(map[int64]*model.User)}
	svc := NewUserService(store, zap.NewNop())

	_, err := svc.GetByTelegramID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
