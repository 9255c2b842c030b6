// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"checats/internal/delivery/http/middleware"
	"checats/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.GET("/name/:username", r.userHandler.GetUserByName)
		userGroup.GET("/email/:email", r.userHandler.GetUserByEmail)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
		userGroup.PATCH("/:id/role", r.userHandler.ChangeRole)
		userGroup.PATCH("/:id/password", r.userHandler.ChangePassword)
		userGroup.PATCH("/:id/email", r.userHandler.ChangeEmail)
		userGroup.PATCH("/:id/picture", r.userHandler.ChangeProfilePicture)
		userGroup.GET("/:id/posts", r.postHandler.ListUserPosts)
		userGroup.GET("/:id/comments", r.commentHandler.ListUserComments)
	}

	// Post routes that require authentication
	postGroup := e.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.CreatePost)
		postGroup.GET("", r.postHandler.ListPosts)
		postGroup.GET("/:id", r.postHandler.GetPost)
		postGroup.GET("/title/:title", r.postHandler.GetPostByTitle)
		postGroup.PUT("/:id", r.postHandler.UpdatePost)
		postGroup.DELETE("/:id", r.postHandler.DeletePost)
		postGroup.GET("/:id/comments", r.commentHandler.ListPostComments)
	}

	// Comment routes that require authentication
	commentGroup := e.Group("/comments")
	commentGroup.Use(r.authMiddleware.Authenticate)
	{
		commentGroup.POST("", r.commentHandler.CreateComment)
		commentGroup.GET("", r.commentHandler.ListComments)
		commentGroup.GET("/:id", r.commentHandler.GetComment)
		commentGroup.PUT("/:id", r.commentHandler.UpdateComment)
		commentGroup.DELETE("/:id", r.commentHandler.DeleteComment)
	}
}
