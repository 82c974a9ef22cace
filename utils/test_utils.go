package utils

import (
	"testing"
	"time"

	"github.com/chirpmux/chirpmux/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestCreateUserAndProfile seeds a user with its profile directly through the
// DB, bypassing signup. Returns the created user.
func TestCreateUserAndProfile(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{
		Id:           uuid.New().String(),
		Username:     username,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.Profile{UserID: user.Id}).Error)
	return &user
}

// TestCreateTweet seeds one tweet for author. createdAt lets callers control
// feed ordering in tests.
func TestCreateTweet(t *testing.T, db *gorm.DB, author *model.User, text string, createdAt time.Time) *model.Tweet {
	t.Helper()
	tweet := model.Tweet{
		Id:        uuid.New().String(),
		AuthorID:  author.Id,
		Text:      text,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(&tweet).Error)
	tweet.Author = *author
	return &tweet
}

// TestCreateComment seeds one comment under tweet.
func TestCreateComment(t *testing.T, db *gorm.DB, author *model.User, tweet *model.Tweet, text string) *model.Comment {
	t.Helper()
	comment := model.Comment{
		Id:       uuid.New().String(),
		AuthorID: author.Id,
		TweetID:  tweet.Id,
		Text:     text,
	}
	require.NoError(t, db.Create(&comment).Error)
	comment.Author = *author
	return &comment
}

// TestCreateAuthToken issues a token for user so HTTP tests can authenticate.
func TestCreateAuthToken(t *testing.T, db *gorm.DB, user *model.User) string {
	t.Helper()
	token := model.AuthToken{
		Key:    uuid.New().String(),
		UserID: user.Id,
	}
	require.NoError(t, db.Create(&token).Error)
	return token.Key
}
