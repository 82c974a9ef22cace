package service

import (
	"strings"
	"testing"
	"time"

	"github.com/chirpmux/chirpmux/utils"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequiresLiveParent(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	tweet := utils.TestCreateTweet(t, db, alice, "hello", time.Now())

	_, err := svc.CreateComment(alice, "no-such-tweet", "orphan")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateComment(alice, tweet.Id, "")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.CreateComment(alice, tweet.Id, strings.Repeat("x", 256))
	require.ErrorIs(t, err, ErrInvalid)

	// 255 is the comment bound, wider than the tweet's 140.
	comment, err := svc.CreateComment(alice, tweet.Id, strings.Repeat("x", 255))
	require.NoError(t, err)
	require.Equal(t, tweet.Id, comment.TweetID)
}

func TestGetCommentScopedToParent(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	t1 := utils.TestCreateTweet(t, db, alice, "first", time.Now())
	t2 := utils.TestCreateTweet(t, db, alice, "second", time.Now())
	comment := utils.TestCreateComment(t, db, alice, t1, "on the first")

	found, err := svc.GetComment(t1.Id, comment.Id)
	require.NoError(t, err)
	require.Equal(t, comment.Id, found.Id)

	// The right comment under the wrong tweet is a miss.
	_, err = svc.GetComment(t2.Id, comment.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListCommentsOrderingAndMissingParent(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	bob := utils.TestCreateUserAndProfile(t, db, "bob")
	tweet := utils.TestCreateTweet(t, db, alice, "hello", time.Now())

	_, _, err := svc.ListComments("no-such-tweet", PageParams{})
	require.ErrorIs(t, err, ErrNotFound)

	first, err := svc.CreateComment(bob, tweet.Id, "first")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := svc.CreateComment(alice, tweet.Id, "second")
	require.NoError(t, err)

	comments, total, err := svc.ListComments(tweet.Id, PageParams{})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, second.Id, comments[0].Id)
	require.Equal(t, first.Id, comments[1].Id)
}

func TestUpdateAndDeleteCommentOwnership(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	bob := utils.TestCreateUserAndProfile(t, db, "bob")
	tweet := utils.TestCreateTweet(t, db, alice, "hello", time.Now())
	comment := utils.TestCreateComment(t, db, bob, tweet, "mine")

	_, err := svc.UpdateComment(tweet.Id, comment.Id, alice.Id, "not yours")
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateComment(tweet.Id, comment.Id, bob.Id, "still mine")
	require.NoError(t, err)
	require.Equal(t, "still mine", updated.Text)

	require.ErrorIs(t, svc.DeleteComment(tweet.Id, comment.Id, alice.Id), ErrForbidden)
	require.NoError(t, svc.DeleteComment(tweet.Id, comment.Id, bob.Id))

	_, err = svc.GetComment(tweet.Id, comment.Id)
	require.ErrorIs(t, err, ErrNotFound)
}
