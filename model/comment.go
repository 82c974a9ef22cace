package model

import "time"

/*

Comment is a reply attached to a tweet

Id: primary key, uuid generated on creation
CreatedAt: time when entity is created, immutable
UpdatedAt: refreshed by gorm on every successful mutation
AuthorID:
Author: user who wrote the comment, cascade on delete
TweetID: parent tweet, immutable once set, cascade on delete

Text: 1..255 characters, validated at the service boundary

*/

type Comment struct {
	Id        string `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	AuthorID  string `json:"author_id" gorm:"not null;index"`
	Author    User   `json:"author" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TweetID   string `json:"tweet_id" gorm:"not null;index"`
	Text      string `json:"text" gorm:"size:255;not null"`
}
