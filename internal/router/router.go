package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdesk/backend/api/handler"
)

type Handlers struct {
	Task    *apiHandler.TaskHandler
	Project *apiHandler.ProjectHandler
	Goal    *apiHandler.GoalHandler
	Tag     *apiHandler.TagHandler
	Comment *apiHandler.CommentHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	private := r.Group("/api/private")
	auth := authMiddleware

	// Tasks
	private.GET("/tasks", auth(handlers.Task.List))
	private.POST("/tasks", auth(handlers.Task.Create))
	private.GET("/tasks/today", auth(handlers.Task.Today))
	private.GET("/tasks/{id}", auth(handlers.Task.Get))
	private.PUT("/tasks/{id}", auth(handlers.Task.Update))
	private.DELETE("/tasks/{id}", auth(handlers.Task.Delete))
	private.POST("/tasks/{id}/complete", auth(handlers.Task.Complete))
	private.POST("/tasks/{id}/reopen", auth(handlers.Task.Reopen))

	// Projects
	private.GET("/projects", auth(handlers.Project.List))
	private.POST("/projects", auth(handlers.Project.Create))
	private.GET("/projects/{id}", auth(handlers.Project.Get))
	private.PUT("/projects/{id}", auth(handlers.Project.Update))
	private.DELETE("/projects/{id}", auth(handlers.Project.Delete))
	private.POST("/projects/{id}/archive", auth(handlers.Project.Archive))
	private.POST("/projects/{id}/restore", auth(handlers.Project.Restore))

	// Goals
	private.GET("/goals", auth(handlers.Goal.List))
	private.POST("/goals", auth(handlers.Goal.Create))
	private.GET("/goals/{id}", auth(handlers.Goal.Get))
	private.PUT("/goals/{id}", auth(handlers.Goal.Update))
	private.DELETE("/goals/{id}", auth(handlers.Goal.Delete))
	private.POST("/goals/{id}/achieve", auth(handlers.Goal.Achieve))
	private.POST("/goals/{id}/restore", auth(handlers.Goal.Restore))

	// Tags
	private.GET("/tags", auth(handlers.Tag.List))
	private.POST("/tags", auth(handlers.Tag.Create))
	private.GET("/tags/{id}", auth(handlers.Tag.Get))
	private.PUT("/tags/{id}", auth(handlers.Tag.Update))
	private.DELETE("/tags/{id}", auth(handlers.Tag.Delete))

	// Comments
	private.GET("/comments", auth(handlers.Comment.List))
	private.POST("/comments", auth(handlers.Comment.Create))
	private.GET("/comments/{id}", auth(handlers.Comment.Get))
	private.PUT("/comments/{id}", auth(handlers.Comment.Update))
	private.DELETE("/comments/{id}", auth(handlers.Comment.Delete))

	return r
}
