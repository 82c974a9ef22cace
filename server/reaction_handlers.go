package server

import (
	"net/http"

	"github.com/chirpmux/chirpmux/server/middlewares"
	"github.com/chirpmux/chirpmux/service"
	"github.com/gin-gonic/gin"
)

// TapPayload is the response body of a tap: the outcome variant, the previous
// kind for replaced/cleared, and the target's aggregate after the tap.
type TapPayload struct {
	Outcome   service.TapOutcome `json:"outcome"`
	Previous  string             `json:"previous,omitempty"`
	Reactions map[string]int     `json:"reactions"`
}

func tapStatus(outcome service.TapOutcome) int {
	if outcome == service.TapCreated {
		return http.StatusCreated
	}
	return http.StatusOK
}

func (api *APIServer) TapTweet(c *gin.Context) {
	tweetID := c.Param("tweet_id")

	result, err := api.service.TapTweet(middlewares.Principal(c).Id, tweetID, c.Param("kind_slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	reactions, err := api.service.TweetReactions(tweetID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(tapStatus(result.Outcome), TapPayload{
		Outcome:   result.Outcome,
		Previous:  result.Previous,
		Reactions: reactions,
	})
}

func (api *APIServer) TapComment(c *gin.Context) {
	// Scope the comment to its parent tweet before tapping so a mismatched
	// pair of ids is a plain 404.
	comment, err := api.service.GetComment(c.Param("tweet_id"), c.Param("comment_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := api.service.TapComment(middlewares.Principal(c).Id, comment.Id, c.Param("kind_slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	reactions, err := api.service.CommentReactions(comment.Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(tapStatus(result.Outcome), TapPayload{
		Outcome:   result.Outcome,
		Previous:  result.Previous,
		Reactions: reactions,
	})
}
