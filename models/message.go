package models

import "time"

// ========================================
// 메시지 타입 상수
// ========================================
const (
	// Server → Web
	MessageTypePlanCreated = "plan_created" // 새 커버리지 계획 생성됨
	MessageTypeSystemInfo  = "system_info"  // 시스템 정보
)

// ========================================
// 공통 WebSocket 메시지 형식
// ========================================
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"` // Unix timestamp (ms)
}

// ========================================
// 계획 생성 알림 데이터
// ========================================
type PlanCreatedData struct {
	TrajectoryID  uint    `json:"trajectory_id"`
	WallWidth     float64 `json:"wall_width"`
	WallHeight    float64 `json:"wall_height"`
	ObstacleCount int     `json:"obstacle_count"`
	PathLength    int     `json:"path_length"` // 경로 포인트 개수
	CreatedAt     string  `json:"created_at"`
}

// ========================================
// 시스템 정보
// ========================================
type SystemInfo struct {
	ConnectedClients int       `json:"connected_clients"` // 연결된 클라이언트 수
	ServerTime       time.Time `json:"server_time"`       // 서버 시각
}
