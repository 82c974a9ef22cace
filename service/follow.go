package service

import (
	"time"

	"github.com/chirpmux/chirpmux/model"
	Logger "github.com/chirpmux/chirpmux/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// Follow creates a follow edge from the principal to the named user.
// Self-follow and duplicate follow are both idempotent successes: the former
// never creates an edge, the latter keeps the original edge and its
// started-at timestamp.
func (s *Service) Follow(followerID string, followeeHandle string) error {
	followee, err := s.userByHandle(followeeHandle)
	if err != nil {
		return err
	}
	if followee.Id == followerID {
		// Deliberate no-op rather than an error: a self edge must never exist.
		Logger.Log.Info("ignoring self-follow from user ", followerID)
		return nil
	}
	sub := model.Subscription{
		FollowerID: followerID,
		FolloweeID: followee.Id,
		CreatedAt:  time.Now(),
	}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&sub).Error
}

// Unfollow removes the edge if present. Removing a non-existent edge is an
// idempotent success.
func (s *Service) Unfollow(followerID string, followeeHandle string) error {
	followee, err := s.userByHandle(followeeHandle)
	if err != nil {
		return err
	}
	return s.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followee.Id).
		Delete(&model.Subscription{}).Error
}

// Followees returns the users the principal follows, ordered by handle.
func (s *Service) Followees(userID string) ([]*model.User, error) {
	var users []*model.User
	err := s.DB.Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.followee_id = users.id").
		Where("subscriptions.follower_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

// Followers returns the users following the principal, ordered by handle.
func (s *Service) Followers(userID string) ([]*model.User, error) {
	var users []*model.User
	err := s.DB.Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.follower_id = users.id").
		Where("subscriptions.followee_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

func (s *Service) userByHandle(handle string) (*model.User, error) {
	var user model.User
	res := s.DB.Where("username = ?", handle).First(&user)
	if res.RowsAffected != 1 {
		return nil, errors.Wrapf(ErrNotFound, "user %s", handle)
	}
	return &user, nil
}
