package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chirpmux/chirpmux/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	MaxTweetTextLength   = 140
	MaxCommentTextLength = 255
)

// TweetFilter narrows ListTweets: exact author handle and case-insensitive
// substring search, both optional.
type TweetFilter struct {
	AuthorHandle string
	TextContains string
	PageParams
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func validateText(text string, max int) error {
	n := utf8.RuneCountInString(text)
	if n < 1 || n > max {
		return errors.Wrapf(ErrInvalid, "text length must be 1..%d, got %d", max, n)
	}
	return nil
}

func (s *Service) CreateTweet(author *model.User, text string) (*model.Tweet, error) {
	if err := validateText(text, MaxTweetTextLength); err != nil {
		return nil, err
	}
	tweet := model.Tweet{
		Id:       uuid.New().String(),
		AuthorID: author.Id,
		Author:   *author,
		Text:     text,
	}
	if err := s.DB.Create(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (s *Service) GetTweet(id string) (*model.Tweet, error) {
	var tweet model.Tweet
	res := s.DB.Preload("Author").Where("id = ?", id).First(&tweet)
	if res.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "tweet %s", id)
	}
	return &tweet, nil
}

// ListTweets returns one page of tweets ordered by created_at descending with
// id descending as tiebreaker, plus the unpaginated total.
func (s *Service) ListTweets(filter TweetFilter) ([]*model.Tweet, int64, error) {
	filter.PageParams = filter.PageParams.Normalize()

	base := func() *gorm.DB {
		q := s.DB.Model(&model.Tweet{})
		if filter.AuthorHandle != "" {
			q = q.Joins("JOIN users ON users.id = tweets.author_id").
				Where("users.username = ?", filter.AuthorHandle)
		}
		if filter.TextContains != "" {
			q = q.Where("tweets.text ILIKE ?", fmt.Sprintf("%%%s%%", likeEscaper.Replace(filter.TextContains)))
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []*model.Tweet
	err := base().
		Preload("Author").
		Order("tweets.created_at DESC, tweets.id DESC").
		Offset(filter.Offset()).
		Limit(filter.Size).
		Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}

// UpdateTweet replaces the text. Only the author may mutate; updated_at is
// refreshed by gorm, created_at never changes.
func (s *Service) UpdateTweet(id string, principalID string, text string) (*model.Tweet, error) {
	tweet, err := s.GetTweet(id)
	if err != nil {
		return nil, err
	}
	if tweet.AuthorID != principalID {
		return nil, errors.Wrapf(ErrForbidden, "tweet %s is not owned by principal", id)
	}
	if err := validateText(text, MaxTweetTextLength); err != nil {
		return nil, err
	}
	if err := s.DB.Model(tweet).Update("text", text).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *Service) DeleteTweet(id string, principalID string) error {
	tweet, err := s.GetTweet(id)
	if err != nil {
		return err
	}
	if tweet.AuthorID != principalID {
		return errors.Wrapf(ErrForbidden, "tweet %s is not owned by principal", id)
	}
	// Cascades to comments and reactions through the schema.
	return s.DB.Delete(tweet).Error
}
