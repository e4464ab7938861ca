package api

import (
	"github.com/Romain-GUILLEMOT/TaskyBack/handlers"
	"github.com/Romain-GUILLEMOT/TaskyBack/handlers/auth"
	middlewares "github.com/Romain-GUILLEMOT/TaskyBack/middleware"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, users *dbTools.UserStore, tasks *dbTools.TaskStore) {
	authHandler := &auth.AuthHandler{Users: users}
	userHandler := &handlers.UserHandler{Users: users}
	avatarHandler := &handlers.AvatarHandler{Users: users}
	taskHandler := &handlers.TaskHandler{Tasks: tasks}
	requireAuth := middlewares.RequireAuth(users)

	router := app.Group("/api")
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API en bonne santé !")
	})

	usersRouter := router.Group("/users")
	UserRoutes(usersRouter, requireAuth, authHandler, userHandler, avatarHandler)
	tasksRouter := router.Group("/tasks", requireAuth)
	TaskRoutes(tasksRouter, taskHandler)
}

func UserRoutes(router fiber.Router, requireAuth fiber.Handler, authHandler *auth.AuthHandler, userHandler *handlers.UserHandler, avatarHandler *handlers.AvatarHandler) {
	router.Post("/", authHandler.RegisterUser)               // POST   /users (inscription)
	router.Post("/login", authHandler.LoginUser)             // POST   /users/login
	router.Post("/logout", requireAuth, authHandler.Logout)  // POST   /users/logout
	router.Post("/logoutAll", requireAuth, authHandler.LogoutAll)
	router.Get("/me", requireAuth, userHandler.Me)           // GET    /users/me
	router.Patch("/me", requireAuth, userHandler.UpdateMe)   // PATCH  /users/me
	router.Delete("/me", requireAuth, userHandler.DeleteMe)  // DELETE /users/me (cascade tâches)
	router.Post("/me/avatar", requireAuth, avatarHandler.Upload)
	router.Delete("/me/avatar", requireAuth, avatarHandler.Delete)
	router.Get("/:id/avatar", avatarHandler.Get) // public
}

func TaskRoutes(router fiber.Router, taskHandler *handlers.TaskHandler) {
	router.Post("/", taskHandler.Create)      // POST   /tasks
	router.Get("/", taskHandler.List)         // GET    /tasks?completed=&limit=&skip=&sortBy=
	router.Get("/:id", taskHandler.Get)       // GET    /tasks/:id
	router.Patch("/:id", taskHandler.Update)  // PATCH  /tasks/:id
	router.Delete("/:id", taskHandler.Delete) // DELETE /tasks/:id
}
