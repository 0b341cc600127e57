package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"robostaff_backend/internals/configs"
	"robostaff_backend/internals/databases"
	"robostaff_backend/internals/middlewares"
	"robostaff_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	databases.ConnectDB()
	databases.TunePool()
	if err := databases.Migrate(databases.DB); err != nil {
		log.Fatalf("[ERROR] Gagal migrasi database: %v", err)
	}
	databases.WarmUpQueries()

	app := fiber.New(fiber.Config{
		AppName:     "RoboStaff Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	route.SetupRoutes(app, databases.DB)

	// graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("[INFO] Sinyal berhenti diterima, mematikan server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("[ERROR] Gagal shutdown: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "3000")
	log.Printf("[INFO] Server berjalan di port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("[ERROR] Server berhenti: %v", err)
	}
}
