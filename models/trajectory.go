package models

import (
	"encoding/json"
	"time"
)

// Trajectory - 커버리지 계획 결과 행
// obstacles/path는 통째로만 다시 읽으므로 JSON TEXT 컬럼에 직렬화해서 저장
type Trajectory struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	WallWidth  float64 `gorm:"not null" json:"wall_width"`
	WallHeight float64 `gorm:"not null" json:"wall_height"`
	Obstacles  string  `gorm:"type:text;not null" json:"-"`
	Path       string  `gorm:"type:text;not null" json:"-"`

	// 최신 trajectory 조회용 인덱스
	CreatedAt time.Time `gorm:"index:idx_trajectories_created_at;not null" json:"created_at"`
}

func (Trajectory) TableName() string {
	return "trajectories"
}

// TrajectoryResponse - API 응답 형식 (TEXT blob 복원 후)
type TrajectoryResponse struct {
	ID         uint        `json:"id"`
	WallWidth  float64     `json:"wall_width"`
	WallHeight float64     `json:"wall_height"`
	Obstacles  []Obstacle  `json:"obstacles"`
	Path       [][]float64 `json:"path"`
	CreatedAt  string      `json:"created_at"`
}

// TrajectorySummary - 목록 조회용 경량 프로젝션
type TrajectorySummary struct {
	ID            uint    `json:"id"`
	WallWidth     float64 `json:"wall_width"`
	WallHeight    float64 `json:"wall_height"`
	ObstacleCount int     `json:"obstacle_count"`
	PathLength    int     `json:"path_length"`
	CreatedAt     string  `json:"created_at"`
}

// ToResponse - 저장된 blob을 원래 구조로 복원
// 저장 시점과 동일한 순서/값으로 돌아와야 함
func (t *Trajectory) ToResponse() (*TrajectoryResponse, error) {
	var obstacles []Obstacle
	if err := json.Unmarshal([]byte(t.Obstacles), &obstacles); err != nil {
		return nil, err
	}
	if obstacles == nil {
		obstacles = []Obstacle{}
	}

	var path [][]float64
	if err := json.Unmarshal([]byte(t.Path), &path); err != nil {
		return nil, err
	}
	if path == nil {
		path = [][]float64{}
	}

	return &TrajectoryResponse{
		ID:         t.ID,
		WallWidth:  t.WallWidth,
		WallHeight: t.WallHeight,
		Obstacles:  obstacles,
		Path:       path,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ToSummary - blob 전체를 내려보내지 않는 요약본
func (t *Trajectory) ToSummary() (*TrajectorySummary, error) {
	resp, err := t.ToResponse()
	if err != nil {
		return nil, err
	}

	return &TrajectorySummary{
		ID:            resp.ID,
		WallWidth:     resp.WallWidth,
		WallHeight:    resp.WallHeight,
		ObstacleCount: len(resp.Obstacles),
		PathLength:    len(resp.Path),
		CreatedAt:     resp.CreatedAt,
	}, nil
}
