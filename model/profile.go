package model

import "time"

/*

Profile is the social-graph endpoint of a user, one-to-one with User

UserID: primary key, same id as the owning user
CreatedAt: time when entity is created

Following: profiles this user follows, "many-to-many" through Subscription

Keeping the graph on a separate table (instead of users directly) keeps follow
edges cascading independently of content ownership.

*/

type Profile struct {
	UserID    string `gorm:"primaryKey"`
	CreatedAt time.Time
	Following []*Profile `json:"following" gorm:"many2many:subscriptions;foreignKey:UserID;joinForeignKey:FollowerID;References:UserID;joinReferences:FolloweeID"`
}
