package model

import "time"

/*

Tweet is a short text post authored by a user

Id: primary key, uuid generated on creation
CreatedAt: time when entity is created, immutable
UpdatedAt: refreshed by gorm on every successful mutation
AuthorID:
Author: user who wrote the tweet, "belongs-to" relation, cascade on delete

Text: 1..140 characters, validated at the service boundary

Comments: threaded comments under this tweet, cascade on delete

*/

type Tweet struct {
	Id        string `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	AuthorID  string     `json:"author_id" gorm:"not null;index"`
	Author    User       `json:"author" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string     `json:"text" gorm:"size:140;not null"`
	Comments  []*Comment `json:"comments" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
