package main

import (
	"log"
	"os"

	"github.com/Romain-GUILLEMOT/TaskyBack/api"
	"github.com/Romain-GUILLEMOT/TaskyBack/config"
	"github.com/Romain-GUILLEMOT/TaskyBack/db"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils"
	"github.com/Romain-GUILLEMOT/TaskyBack/utils/dbTools"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	defer utils.HandlePanic()
	if err := godotenv.Load(); err != nil {
		log.Println(".env introuvable, variables d'environnement système utilisées.")
	}
	app := fiber.New(fiber.Config{
		BodyLimit: 2 * 1024 * 1024, // marge au-dessus de la limite d'avatar (1 Mo)
	})
	debug := os.Getenv("APP_DEBUG")
	if debug == "true" {
		log.Println("Running in debug mode")
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Requested-With",
	}))
	utils.InitLogger()

	config.LoadConfig()
	cfg := config.GetConfig()

	session := db.Connect()
	defer session.Close()
	db.ApplyMigrations(session)
	utils.InitRedis()
	utils.InitMailer()

	tasks := &dbTools.TaskStore{Session: session}
	users := &dbTools.UserStore{Session: session, Secret: []byte(cfg.JWTSecret), Tasks: tasks}

	api.SetupRoutes(app, users, tasks)

	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	log.Fatal(app.Listen(":" + port))
}
