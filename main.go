package main

import (
	"log"
	"os"
	"time"

	"mural-backend/handlers"
	"mural-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env 파일을 찾을 수 없습니다.")
	}

	// DB 연결 (SQLite 파일 또는 MYSQL_* 설정 시 MySQL)
	if err := services.InitDatabase(); err != nil {
		log.Fatalf("❌ DB 초기화 실패: %v", err)
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://localhost:3000",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	go handlers.Manager.Start()

	// 커버리지 계획 API
	app.Post("/plan_coverage", handlers.HandlePlanCoverage)
	app.Get("/get_trajectory/:id", handlers.HandleGetTrajectory)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"clients": handlers.Manager.GetClientCount(),
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// 최근 계획 목록 조회
	api.Get("/trajectories/recent", handlers.HandleGetRecentTrajectories)

	// WebSocket - 계획 생성 실시간 조회
	app.Use("/websocket", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/websocket/web", websocket.New(handlers.HandleWebClientWebSocket))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("🚀 서버 시작: http://localhost:" + port)
	log.Println("🧱 계획 API: POST http://localhost:" + port + "/plan_coverage")
	log.Println("📡 WebSocket: ws://localhost:" + port + "/websocket/web")
	log.Fatal(app.Listen(":" + port))
}
