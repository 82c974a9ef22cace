// Package server maps the external REST surface onto the domain core. Every
// handler authenticates through the token middleware, validates inputs at the
// boundary and translates taxonomy errors to canonical status codes.
package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chirpmux/chirpmux/server/middlewares"
	"github.com/chirpmux/chirpmux/service"
	"github.com/chirpmux/chirpmux/utils"
	Logger "github.com/chirpmux/chirpmux/utils/log"
	"github.com/chirpmux/chirpmux/utils/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIServer struct {
	service *service.Service
}

// SetupRouter wires the full route table. Signup, login, ping and metrics are
// public; everything else sits behind token auth.
func SetupRouter(svc *service.Service) *gin.Engine {
	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(requestMetrics())

	api := &APIServer{service: svc}

	router.POST("/signup", api.Signup)
	router.POST("/login", api.Login)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authed := router.Group("/", middlewares.TokenAuth(svc))

	authed.GET("/tweets", api.ListTweets)
	authed.POST("/tweets", api.CreateTweet)
	authed.GET("/tweets/:tweet_id", api.GetTweet)
	authed.PUT("/tweets/:tweet_id", api.UpdateTweet)
	authed.PATCH("/tweets/:tweet_id", api.UpdateTweet)
	authed.DELETE("/tweets/:tweet_id", api.DeleteTweet)

	authed.GET("/tweets/:tweet_id/comments", api.ListComments)
	authed.POST("/tweets/:tweet_id/comments", api.CreateComment)
	authed.GET("/tweets/:tweet_id/comments/:comment_id", api.GetComment)
	authed.PUT("/tweets/:tweet_id/comments/:comment_id", api.UpdateComment)
	authed.PATCH("/tweets/:tweet_id/comments/:comment_id", api.UpdateComment)
	authed.DELETE("/tweets/:tweet_id/comments/:comment_id", api.DeleteComment)

	authed.POST("/tweets/:tweet_id/reactions/:kind_slug", api.TapTweet)
	authed.POST("/tweets/:tweet_id/comments/:comment_id/reactions/:kind_slug", api.TapComment)

	authed.POST("/follow/:username", api.Follow)
	authed.DELETE("/follow/:username", api.Unfollow)
	authed.GET("/following", api.Following)
	authed.GET("/followers", api.Followers)

	authed.GET("/recommendations", api.Feed)

	return router
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RequestCount.
			WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

// abortWithError translates a taxonomy error into its canonical status code.
// Anything outside the taxonomy is a 500 and gets logged; transient gateway
// failures that survived their retry surface as 503.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrTransient), utils.IsTransientDBError(err):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		Logger.Log.Error("unclassified error at request boundary: ", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// pageParams reads the shared page/size query parameters. Values out of range
// are clamped by the service rather than rejected.
func pageParams(c *gin.Context) service.PageParams {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return service.PageParams{Page: page, Size: size}
}
