package server

import (
	"time"

	"github.com/chirpmux/chirpmux/model"
)

// TweetPayload is the wire shape of a tweet. Reactions maps kind slug to
// count with zero counts omitted.
type TweetPayload struct {
	Id           string         `json:"id"`
	AuthorHandle string         `json:"author_handle"`
	Text         string         `json:"text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Reactions    map[string]int `json:"reactions"`
}

// CommentPayload adds the parent tweet to the tweet shape.
type CommentPayload struct {
	Id            string         `json:"id"`
	AuthorHandle  string         `json:"author_handle"`
	ParentTweetID string         `json:"parent_tweet_id"`
	Text          string         `json:"text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Reactions     map[string]int `json:"reactions"`
}

// PagePayload is the pagination envelope shared by every listing.
type PagePayload struct {
	Count   int64       `json:"count"`
	Page    int         `json:"page"`
	Size    int         `json:"size"`
	Results interface{} `json:"results"`
}

func tweetPayload(t *model.Tweet, reactions map[string]int) TweetPayload {
	if reactions == nil {
		reactions = map[string]int{}
	}
	return TweetPayload{
		Id:           t.Id,
		AuthorHandle: t.Author.Username,
		Text:         t.Text,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Reactions:    reactions,
	}
}

func tweetPayloads(tweets []*model.Tweet, reactions map[string]map[string]int) []TweetPayload {
	payloads := make([]TweetPayload, 0, len(tweets))
	for _, t := range tweets {
		payloads = append(payloads, tweetPayload(t, reactions[t.Id]))
	}
	return payloads
}

func commentPayload(cm *model.Comment, reactions map[string]int) CommentPayload {
	if reactions == nil {
		reactions = map[string]int{}
	}
	return CommentPayload{
		Id:            cm.Id,
		AuthorHandle:  cm.Author.Username,
		ParentTweetID: cm.TweetID,
		Text:          cm.Text,
		CreatedAt:     cm.CreatedAt,
		UpdatedAt:     cm.UpdatedAt,
		Reactions:     reactions,
	}
}

func commentPayloads(comments []*model.Comment, reactions map[string]map[string]int) []CommentPayload {
	payloads := make([]CommentPayload, 0, len(comments))
	for _, cm := range comments {
		payloads = append(payloads, commentPayload(cm, reactions[cm.Id]))
	}
	return payloads
}

func handles(users []*model.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}
