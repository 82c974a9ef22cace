package server

import (
	"net/http"

	"github.com/chirpmux/chirpmux/server/middlewares"
	"github.com/chirpmux/chirpmux/service"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type signupInput struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (api *APIServer) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errors.Wrap(service.ErrInvalid, err.Error()))
		return
	}

	user, token, err := api.service.Signup(input.Username, input.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       user.Id,
		"username": user.Username,
		"token":    token,
	})
}

func (api *APIServer) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errors.Wrap(service.ErrInvalid, err.Error()))
		return
	}

	token, err := api.service.Login(input.Username, input.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (api *APIServer) Follow(c *gin.Context) {
	err := api.service.Follow(middlewares.Principal(c).Id, c.Param("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "following " + c.Param("username")})
}

func (api *APIServer) Unfollow(c *gin.Context) {
	err := api.service.Unfollow(middlewares.Principal(c).Id, c.Param("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unfollowed " + c.Param("username")})
}

func (api *APIServer) Following(c *gin.Context) {
	users, err := api.service.Followees(middlewares.Principal(c).Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": handles(users)})
}

func (api *APIServer) Followers(c *gin.Context) {
	users, err := api.service.Followers(middlewares.Principal(c).Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": handles(users)})
}

func (api *APIServer) Feed(c *gin.Context) {
	page := pageParams(c).Normalize()

	tweets, total, err := api.service.Feed(middlewares.Principal(c).Id, page)
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

	c.JSON(http.StatusOK, PagePayload{
		Count:   total,
		Page:    page.Page,
		Size:    page.Size,
		Results: tweetPayloads(tweets, reactions),
	})
}
