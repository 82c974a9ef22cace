package service

import (
	"github.com/chirpmux/chirpmux/model"
	"github.com/chirpmux/chirpmux/utils/metrics"
)

// Feed returns one page of tweets authored by the principal's followees,
// newest first with id descending as tiebreaker. A single bounded query joins
// tweets against the follow edges instead of fetching per followee. The
// principal's own tweets never appear: a self edge cannot exist.
func (s *Service) Feed(userID string, page PageParams) ([]*model.Tweet, int64, error) {
	metrics.FeedRequests.Inc()
	page = page.Normalize()

	var total int64
	err := s.DB.Model(&model.Tweet{}).
		Joins("JOIN subscriptions ON subscriptions.followee_id = tweets.author_id").
		Where("subscriptions.follower_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var tweets []*model.Tweet
	err = s.DB.Model(&model.Tweet{}).
		Preload("Author").
		Joins("JOIN subscriptions ON subscriptions.followee_id = tweets.author_id").
		Where("subscriptions.follower_id = ?", userID).
		Order("tweets.created_at DESC, tweets.id DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}
