package handlers

import (
	"log"
	"sync"
	"time"

	"mural-backend/models"

	"github.com/gofiber/websocket/v2"
)

// 클라이언트 관리자
type ClientManager struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan models.WebSocketMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// 전역 클라이언트 관리자
var Manager = &ClientManager{
	clients:    make(map[*websocket.Conn]bool),
	broadcast:  make(chan models.WebSocketMessage, 100),
	register:   make(chan *websocket.Conn),
	unregister: make(chan *websocket.Conn),
}

// 클라이언트 관리 시작
func (manager *ClientManager) Start() {
	for {
		select {
		case conn := <-manager.register:
			manager.mutex.Lock()
			manager.clients[conn] = true
			manager.mutex.Unlock()
			log.Printf("클라이언트 등록: %s", conn.RemoteAddr())

		case conn := <-manager.unregister:
			manager.removeClient(conn)

		case message := <-manager.broadcast:
			manager.handleBroadcast(message)
		}
	}
}

func (manager *ClientManager) removeClient(conn *websocket.Conn) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	if _, ok := manager.clients[conn]; ok {
		delete(manager.clients, conn)
		_ = conn.Close()
		log.Printf("클라이언트 해제: %s", conn.RemoteAddr())
	}
}

func (manager *ClientManager) handleBroadcast(message models.WebSocketMessage) {
	manager.mutex.RLock()
	var failed []*websocket.Conn
	for conn := range manager.clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("전송 실패 (%s): %v", conn.RemoteAddr(), err)
			failed = append(failed, conn)
		}
	}
	manager.mutex.RUnlock()

	for _, conn := range failed {
		manager.removeClient(conn)
	}
}

// BroadcastMessage - 외부에서 호출할 수 있는 브로드캐스트 메서드
// 채널이 가득 차면 메시지를 버림 - 계획 요청을 막으면 안 됨
func (manager *ClientManager) BroadcastMessage(msg models.WebSocketMessage) {
	select {
	case manager.broadcast <- msg:
	default:
		log.Println("⚠️ broadcast 채널 가득 참")
	}
}

// GetClientCount - 연결된 클라이언트 수 반환
func (manager *ClientManager) GetClientCount() int {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()
	return len(manager.clients)
}

// BroadcastPlanCreated - 새 trajectory 생성 알림
func BroadcastPlanCreated(resp *models.TrajectoryResponse) {
	Manager.BroadcastMessage(models.WebSocketMessage{
		Type: models.MessageTypePlanCreated,
		Data: models.PlanCreatedData{
			TrajectoryID:  resp.ID,
			WallWidth:     resp.WallWidth,
			WallHeight:    resp.WallHeight,
			ObstacleCount: len(resp.Obstacles),
			PathLength:    len(resp.Path),
			CreatedAt:     resp.CreatedAt,
		},
		Timestamp: time.Now().UnixMilli(),
	})
}

// Web 클라이언트 WebSocket Handler (계획 생성 실시간 조회용)
func HandleWebClientWebSocket(c *websocket.Conn) {
	Manager.register <- c

	defer func() {
		Manager.unregister <- c
	}()

	// 연결 확인 메시지 전송
	welcomeMsg := models.WebSocketMessage{
		Type: models.MessageTypeSystemInfo,
		Data: models.SystemInfo{
			ConnectedClients: Manager.GetClientCount(),
			ServerTime:       time.Now(),
		},
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.WriteJSON(welcomeMsg)

	// 뷰어 전용 - 수신 메시지는 버리고 연결 종료만 감지
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Printf("웹 메시지 읽기 오류: %v", err)
			break
		}
	}
}
