package service

import (
	"testing"
	"time"

	"github.com/chirpmux/chirpmux/utils"
	"github.com/stretchr/testify/require"
)

func TestFeedChronologicalMerge(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	carol := utils.TestCreateUserAndProfile(t, db, "carol")
	bob := utils.TestCreateUserAndProfile(t, db, "bob")

	require.NoError(t, svc.Follow(bob.Id, "alice"))
	require.NoError(t, svc.Follow(bob.Id, "carol"))

	base := time.Now().Add(-time.Hour)
	t1 := utils.TestCreateTweet(t, db, alice, "t1", base)
	t2 := utils.TestCreateTweet(t, db, carol, "t2", base.Add(time.Minute))
	t3 := utils.TestCreateTweet(t, db, alice, "t3", base.Add(2*time.Minute))

	feed, total, err := svc.Feed(bob.Id, PageParams{})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Equal(t, []string{t3.Id, t2.Id, t1.Id}, []string{feed[0].Id, feed[1].Id, feed[2].Id})
	require.Equal(t, "alice", feed[0].Author.Username)
}

func TestFeedExcludesOwnAndNonFolloweeTweets(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	bob := utils.TestCreateUserAndProfile(t, db, "bob")
	stranger := utils.TestCreateUserAndProfile(t, db, "stranger")

	require.NoError(t, svc.Follow(bob.Id, "alice"))

	now := time.Now()
	utils.TestCreateTweet(t, db, alice, "followed", now)
	utils.TestCreateTweet(t, db, bob, "own tweet", now)
	utils.TestCreateTweet(t, db, stranger, "unrelated", now)

	feed, total, err := svc.Feed(bob.Id, PageParams{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "followed", feed[0].Text)
}

func TestFeedEmptyAfterSelfFollowAttempt(t *testing.T) {
	svc, db := newTestService(t)
	bob := utils.TestCreateUserAndProfile(t, db, "bob")
	utils.TestCreateTweet(t, db, bob, "talking to myself", time.Now())

	require.NoError(t, svc.Follow(bob.Id, "bob"))

	feed, total, err := svc.Feed(bob.Id, PageParams{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, feed)
}

func TestFeedPagination(t *testing.T) {
	svc, db := newTestService(t)
	alice := utils.TestCreateUserAndProfile(t, db, "alice")
	bob := utils.TestCreateUserAndProfile(t, db, "bob")
	require.NoError(t, svc.Follow(bob.Id, "alice"))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		utils.TestCreateTweet(t, db, alice, "tweet", base.Add(time.Duration(i)*time.Second))
	}

	feed, total, err := svc.Feed(bob.Id, PageParams{Page: 2, Size: 3})
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, feed, 2)
}
