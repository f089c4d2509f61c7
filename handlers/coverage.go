package handlers

import (
	"errors"
	"log"
	"strconv"

	"mural-backend/algorithms"
	"mural-backend/models"
	"mural-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HandlePlanCoverage - 커버리지 경로 생성 + 저장
func HandlePlanCoverage(c *fiber.Ctx) error {
	var req models.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
		})
	}

	// 벽 크기 검증 (장애물 좌표는 원래부터 검증하지 않음 - 벽 밖 장애물은 그냥 무시됨)
	if req.WallWidth <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "wall_width must be greater than 0",
		})
	}
	if req.WallHeight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "wall_height must be greater than 0",
		})
	}

	log.Printf("📐 커버리지 계획 요청: %.1f x %.1f 벽, 장애물 %d개",
		req.WallWidth, req.WallHeight, len(req.Obstacles))

	rects := make([]algorithms.Rect, len(req.Obstacles))
	for i, obs := range req.Obstacles {
		rects[i] = algorithms.Rect{
			X:      obs.X,
			Y:      obs.Y,
			Width:  obs.Width,
			Height: obs.Height,
		}
	}

	path := algorithms.GeneratePath(req.WallWidth, req.WallHeight, rects)

	trajectory, err := services.SaveTrajectory(req.WallWidth, req.WallHeight, req.Obstacles, path)
	if err != nil {
		log.Printf("❌ trajectory 저장 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Internal server error",
		})
	}

	resp, err := trajectory.ToResponse()
	if err != nil {
		log.Printf("❌ trajectory %d 복원 실패: %v", trajectory.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Internal server error",
		})
	}

	log.Printf("✅ trajectory %d 생성 완료 (경로 포인트 %d개)", trajectory.ID, len(path))

	// 웹 클라이언트에 알림 (전송 실패해도 요청은 성공)
	BroadcastPlanCreated(resp)

	return c.JSON(resp)
}

// HandleGetTrajectory - 저장된 trajectory 조회
func HandleGetTrajectory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid trajectory id",
		})
	}

	trajectory, err := services.GetTrajectoryByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Trajectory not found",
		})
	}
	if err != nil {
		log.Printf("❌ trajectory %d 조회 실패: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Internal server error",
		})
	}

	resp, err := trajectory.ToResponse()
	if err != nil {
		log.Printf("❌ trajectory %d 복원 실패: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Internal server error",
		})
	}

	return c.JSON(resp)
}

// HandleGetRecentTrajectories - 최근 trajectory 목록 조회
func HandleGetRecentTrajectories(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "20")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}

	trajectories, err := services.GetRecentTrajectories(limit)
	if err != nil {
		log.Printf("❌ trajectory 목록 조회 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch trajectories",
		})
	}

	summaries := make([]*models.TrajectorySummary, 0, len(trajectories))
	for i := range trajectories {
		summary, err := trajectories[i].ToSummary()
		if err != nil {
			log.Printf("⚠️ trajectory %d 요약 실패: %v", trajectories[i].ID, err)
			continue
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"count":        len(summaries),
		"trajectories": summaries,
	})
}
