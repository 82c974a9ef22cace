package server

import (
	"net/http"

	"github.com/chirpmux/chirpmux/server/middlewares"
	"github.com/chirpmux/chirpmux/service"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type tweetInput struct {
	Text string `json:"text" binding:"required,min=1,max=140"`
}

func (api *APIServer) ListTweets(c *gin.Context) {
	filter := service.TweetFilter{
		AuthorHandle: c.Query("user"),
		TextContains: c.Query("search"),
		PageParams:   pageParams(c),
	}

	tweets, total, err := api.service.ListTweets(filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	ids := make([]string, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.Id)
	}
	reactions, err := api.service.TweetReactionsBatch(ids)
	if err != nil {
		abortWithError(c, err)
		return
	}

	page := filter.PageParams.Normalize()
	c.JSON(http.StatusOK, PagePayload{
		Count:   total,
		Page:    page.Page,
		Size:    page.Size,
		Results: tweetPayloads(tweets, reactions),
	})
}

func (api *APIServer) CreateTweet(c *gin.Context) {
	var input tweetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errors.Wrap(service.ErrInvalid, err.Error()))
		return
	}

	tweet, err := api.service.CreateTweet(middlewares.Principal(c), input.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tweetPayload(tweet, nil))
}

func (api *APIServer) GetTweet(c *gin.Context) {
	tweet, err := api.service.GetTweet(c.Param("tweet_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	reactions, err := api.service.TweetReactions(tweet.Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tweetPayload(tweet, reactions))
}

func (api *APIServer) UpdateTweet(c *gin.Context) {
	var input tweetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errors.Wrap(service.ErrInvalid, err.Error()))
		return
	}

	tweet, err := api.service.UpdateTweet(c.Param("tweet_id"), middlewares.Principal(c).Id, input.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	reactions, err := api.service.TweetReactions(tweet.Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tweetPayload(tweet, reactions))
}

func (api *APIServer) DeleteTweet(c *gin.Context) {
	err := api.service.DeleteTweet(c.Param("tweet_id"), middlewares.Principal(c).Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
