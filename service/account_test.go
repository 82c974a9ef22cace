package service

import (
	"testing"

	"github.com/chirpmux/chirpmux/model"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesUserProfileAndToken(t *testing.T) {
	svc, db := newTestService(t)

	user, token, err := svc.Signup("alice", "s3cretpw")
	require.NoError(t, err)
	require.NotEmpty(t, user.Id)
	require.NotEmpty(t, token)

	var profile model.Profile
	require.NoError(t, db.Where("user_id = ?", user.Id).First(&profile).Error)

	resolved, err := svc.ResolveToken(token)
	require.NoError(t, err)
	require.Equal(t, user.Id, resolved.Id)
	require.Equal(t, "alice", resolved.Username)
}

func TestSignupDuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Signup("alice", "s3cretpw")
	require.NoError(t, err)

	_, _, err = svc.Signup("alice", "otherpw")
	require.ErrorIs(t, err, ErrConflict)

	// Nothing half-created from the failed signup.
	var users int64
	require.NoError(t, svc.DB.Model(&model.User{}).Count(&users).Error)
	require.Equal(t, int64(1), users)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Signup("", "s3cretpw")
	require.ErrorIs(t, err, ErrInvalid)

	_, _, err = svc.Signup("alice", "")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Signup("alice", "s3cretpw")
	require.NoError(t, err)

	token, err := svc.Login("alice", "s3cretpw")
	require.NoError(t, err)
	resolved, err := svc.ResolveToken(token)
	require.NoError(t, err)
	require.Equal(t, "alice", resolved.Username)

	_, err = svc.Login("alice", "wrongpw")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Login("nobody", "s3cretpw")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveTokenUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ResolveToken("not-a-token")
	require.ErrorIs(t, err, ErrUnauthenticated)
}
