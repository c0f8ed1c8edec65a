package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"NotificationHub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeUserStore keeps users in memory; email lookups fold case like the
// Mongo collation does.
type fakeUserStore struct {
	users []User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	for i := range f.users {
		if strings.EqualFold(f.users[i].EmailAddress, email) {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *User) error {
	if existing, _ := f.FindByEmail(context.Background(), user.EmailAddress); existing != nil {
		return ErrEmailTaken
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, user *User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return ErrUserNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id string) (*User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == id {
			deleted := f.users[i]
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func newTestUserService(store UserStore) *UserService {
	cfg := &config.AppConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewUserService(store, cfg, zap.NewNop())
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Name:         "Ada",
		EmailAddress: "A@x.com",
		Password:     "s3cret",
		PhoneNumber:  "+15550001",
		DeviceToken:  "device-abc",
		Roles:        []string{"email"},
	}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	store := &fakeUserStore{}
	svc := newTestUserService(store)

	user, token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, CheckPasswordHash("s3cret", user.Password))

	claims, err := ParseToken([]byte("test-secret"), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, []string{"email"}, claims.Roles)
}

func TestRegisterRejectsCaseInsensitiveDuplicate(t *testing.T) {
	store := &fakeUserStore{}
	svc := newTestUserService(store)

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.EmailAddress = "a@x.com"
	_, _, err = svc.Register(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmailTaken))
	assert.Len(t, store.users, 1)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newTestUserService(&fakeUserStore{})

	req := registerRequest()
	req.DeviceToken = ""
	_, _, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestUserService(&fakeUserStore{})

	req := registerRequest()
	req.Roles = []string{"admin"}
	_, _, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	store := &fakeUserStore{}
	svc := newTestUserService(store)

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), Credential{EmailAddress: "A@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())

	// Unknown account fails with the same message, so existence never leaks.
	_, err = svc.Login(context.Background(), Credential{EmailAddress: "nobody@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLoginSucceedsCaseInsensitively(t *testing.T) {
	store := &fakeUserStore{}
	svc := newTestUserService(store)

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), Credential{EmailAddress: "a@X.COM", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestUpdateUnionsRolesWhileReplaceOverwrites(t *testing.T) {
	store := &fakeUserStore{}
	svc := newTestUserService(store)

	user, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	patched, _, err := svc.Update(context.Background(), user.ID.Hex(), UpdateRequest{Roles: []string{"sms"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"email", "sms"}, patched.Roles)

	replaced, _, err := svc.Replace(context.Background(), user.ID.Hex(), UpdateRequest{Roles: []string{"sms"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"sms"}, replaced.Roles)
}

func TestUpdateIssuesFreshToken(t *testing.T) {
	store := &fakeUserStore{}
	svc := newTestUserService(store)

	user, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, token, err := svc.Update(context.Background(), user.ID.Hex(), UpdateRequest{Roles: []string{"push"}})
	require.NoError(t, err)

	claims, err := ParseToken([]byte("test-secret"), token)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"email", "push"}, claims.Roles)
}

func TestUpdateMissingUser(t *testing.T) {
	svc := newTestUserService(&fakeUserStore{})

	_, _, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateRequest{Name: "Bea"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestDeleteMissingUser(t *testing.T) {
	svc := newTestUserService(&fakeUserStore{})

	err := svc.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
