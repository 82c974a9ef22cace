package model

import "time"

/*

User is an authenticated principal of the service

Id: primary key, uuid generated on signup
CreatedAt: time when entity is created
Username: unique display handle, never empty
PasswordHash: bcrypt hash of the user's password, never serialized

Profile: the social-graph node co-identified with this user, created in the
same transaction as the user and destroyed with it

*/

type User struct {
	Id           string `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string   `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-"`
	Profile      *Profile `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
