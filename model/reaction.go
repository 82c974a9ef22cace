package model

import "time"

/*

ReactionKind is one entry of the seeded reaction catalog

Slug: primary key, stable and case-sensitive, e.g. "like"
Label: presentational name, e.g. "Like"

The catalog is seeded at migration time and treated as an immutable reference
table by the reaction engine.

*/

type ReactionKind struct {
	Slug  string `json:"slug" gorm:"primaryKey"`
	Label string `json:"label"`
}

/*

TweetReaction is a user's single reaction on a tweet

UserID: reacting user, composite primary key
TweetID: target tweet, composite primary key
KindSlug: the chosen reaction kind, never null at rest
CreatedAt: time when the reaction row was created

The composite primary key enforces "one reaction per user per tweet"; the tap
state machine in the reaction engine rides on that constraint.

*/

type TweetReaction struct {
	UserID    string `gorm:"primaryKey"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TweetID   string `gorm:"primaryKey"`
	Tweet     Tweet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	KindSlug  string `gorm:"not null"`
	Kind      ReactionKind `gorm:"foreignKey:KindSlug;references:Slug"`
	CreatedAt time.Time
}

// CommentReaction is the comment-side twin of TweetReaction. The two tables
// are kept parallel on purpose; one engine implementation serves both.
type CommentReaction struct {
	UserID    string  `gorm:"primaryKey"`
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CommentID string  `gorm:"primaryKey"`
	Comment   Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	KindSlug  string  `gorm:"not null"`
	Kind      ReactionKind `gorm:"foreignKey:KindSlug;references:Slug"`
	CreatedAt time.Time
}
