package services

import (
	"encoding/json"
	"fmt"

	"mural-backend/models"
)

// SaveTrajectory - 계획 결과 저장 후 id가 채워진 행 반환
// 단일 INSERT라서 부분 기록이 보이는 일은 없음
func SaveTrajectory(wallWidth, wallHeight float64, obstacles []models.Obstacle, path [][]float64) (*models.Trajectory, error) {
	// nil이면 "null"로 직렬화되어 복원 시 빈 리스트가 깨짐
	if obstacles == nil {
		obstacles = []models.Obstacle{}
	}
	if path == nil {
		path = [][]float64{}
	}

	obstaclesJSON, err := json.Marshal(obstacles)
	if err != nil {
		return nil, fmt.Errorf("장애물 직렬화 실패: %v", err)
	}

	pathJSON, err := json.Marshal(path)
	if err != nil {
		return nil, fmt.Errorf("경로 직렬화 실패: %v", err)
	}

	trajectory := &models.Trajectory{
		WallWidth:  wallWidth,
		WallHeight: wallHeight,
		Obstacles:  string(obstaclesJSON),
		Path:       string(pathJSON),
	}

	if err := db.Create(trajectory).Error; err != nil {
		return nil, err
	}

	return trajectory, nil
}

// GetTrajectoryByID - id로 trajectory 조회
// 없으면 gorm.ErrRecordNotFound 반환
func GetTrajectoryByID(id uint) (*models.Trajectory, error) {
	var trajectory models.Trajectory
	if err := db.First(&trajectory, id).Error; err != nil {
		return nil, err
	}
	return &trajectory, nil
}

// GetRecentTrajectories - 최근 trajectory 조회 (최신순)
func GetRecentTrajectories(limit int) ([]models.Trajectory, error) {
	var trajectories []models.Trajectory
	err := db.Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&trajectories).Error
	return trajectories, err
}
