package model

import "time"

/*

Subscription is a directed follow edge between two profiles

FollowerID: profile that follows, composite primary key
FolloweeID: profile being followed, composite primary key
CreatedAt: time the follower started following, set on creation and never
mutated; re-following after an unfollow creates a fresh edge with a fresh
timestamp

The composite primary key is the uniqueness constraint: at most one edge per
ordered (follower, followee) pair. Self edges are rejected in the follow graph
service before ever reaching the database.

*/

type Subscription struct {
	FollowerID string `gorm:"primaryKey"`
	FolloweeID string `gorm:"primaryKey"`
	CreatedAt  time.Time
}
