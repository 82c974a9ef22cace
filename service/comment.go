package service

import (
	"github.com/chirpmux/chirpmux/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (s *Service) CreateComment(author *model.User, tweetID string, text string) (*model.Comment, error) {
	if err := validateText(text, MaxCommentTextLength); err != nil {
		return nil, err
	}
	// The parent must be alive; it is immutable once set.
	if _, err := s.GetTweet(tweetID); err != nil {
		return nil, err
	}
	comment := model.Comment{
		Id:       uuid.New().String(),
		AuthorID: author.Id,
		Author:   *author,
		TweetID:  tweetID,
		Text:     text,
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetComment fetches a comment scoped to its parent tweet. A valid comment id
// under the wrong tweet id is a miss.
func (s *Service) GetComment(tweetID string, id string) (*model.Comment, error) {
	var comment model.Comment
	res := s.DB.Preload("Author").Where("id = ? AND tweet_id = ?", id, tweetID).First(&comment)
	if res.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "comment %s under tweet %s", id, tweetID)
	}
	return &comment, nil
}

func (s *Service) ListComments(tweetID string, page PageParams) ([]*model.Comment, int64, error) {
	if _, err := s.GetTweet(tweetID); err != nil {
		return nil, 0, err
	}
	page = page.Normalize()

	var total int64
	if err := s.DB.Model(&model.Comment{}).Where("tweet_id = ?", tweetID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	err := s.DB.
		Preload("Author").
		Where("tweet_id = ?", tweetID).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *Service) UpdateComment(tweetID string, id string, principalID string, text string) (*model.Comment, error) {
	comment, err := s.GetComment(tweetID, id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != principalID {
		return nil, errors.Wrapf(ErrForbidden, "comment %s is not owned by principal", id)
	}
	if err := validateText(text, MaxCommentTextLength); err != nil {
		return nil, err
	}
	if err := s.DB.Model(comment).Update("text", text).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) DeleteComment(tweetID string, id string, principalID string) error {
	comment, err := s.GetComment(tweetID, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != principalID {
		return errors.Wrapf(ErrForbidden, "comment %s is not owned by principal", id)
	}
	return s.DB.Delete(comment).Error
}
