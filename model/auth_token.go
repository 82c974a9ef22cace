package model

import "time"

/*

AuthToken is an opaque bearer credential for a user

Key: primary key, uuid issued at signup or login
UserID:
User: owning user, cascade on delete
CreatedAt: time when the token was issued

*/

type AuthToken struct {
	Key       string `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time
}
