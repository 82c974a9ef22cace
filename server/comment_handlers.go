package server

import (
	"net/http"

	"github.com/chirpmux/chirpmux/server/middlewares"
	"github.com/chirpmux/chirpmux/service"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type commentInput struct {
	Text string `json:"text" binding:"required,min=1,max=255"`
}

func (api *APIServer) ListComments(c *gin.Context) {
	comments, total, err := api.service.ListComments(c.Param("tweet_id"), pageParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	ids := make([]string, 0, len(comments))
	for _, cm := range comments {
		ids = append(ids, cm.Id)
	}
	reactions, err := api.service.CommentReactionsBatch(ids)
	if err != nil {
		abortWithError(c, err)
		return
	}

	page := pageParams(c).Normalize()
	c.JSON(http.StatusOK, PagePayload{
		Count:   total,
		Page:    page.Page,
		Size:    page.Size,
		Results: commentPayloads(comments, reactions),
	})
}

func (api *APIServer) CreateComment(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errors.Wrap(service.ErrInvalid, err.Error()))
		return
	}

	comment, err := api.service.CreateComment(middlewares.Principal(c), c.Param("tweet_id"), input.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentPayload(comment, nil))
}

func (api *APIServer) GetComment(c *gin.Context) {
	comment, err := api.service.GetComment(c.Param("tweet_id"), c.Param("comment_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	reactions, err := api.service.CommentReactions(comment.Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentPayload(comment, reactions))
}

func (api *APIServer) UpdateComment(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errors.Wrap(service.ErrInvalid, err.Error()))
		return
	}

	comment, err := api.service.UpdateComment(
		c.Param("tweet_id"), c.Param("comment_id"), middlewares.Principal(c).Id, input.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	reactions, err := api.service.CommentReactions(comment.Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentPayload(comment, reactions))
}

func (api *APIServer) DeleteComment(c *gin.Context) {
	err := api.service.DeleteComment(c.Param("tweet_id"), c.Param("comment_id"), middlewares.Principal(c).Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
