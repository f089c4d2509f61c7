package algorithms

// StepSize - 커버리지 경로 샘플링 간격 (미터)
const StepSize = 0.25

// Rect - 벽에 붙은 축 정렬 직사각형 장애물 (좌하단 기준)
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains - 점이 닫힌 사각형 내부에 있는지 검사 (경계 포함)
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.Width &&
		r.Y <= y && y <= r.Y+r.Height
}

// collides - 점이 장애물 중 하나라도 충돌하는지 검사
func collides(x, y float64, obstacles []Rect) bool {
	for _, obs := range obstacles {
		if obs.Contains(x, y) {
			return true
		}
	}
	return false
}

// GeneratePath - 지그재그(boustrophedon) 커버리지 경로 생성
//
// (0, 0)에서 시작해 가로로 왕복하며 StepSize 간격으로 점을 찍는다.
// 장애물 경계에 닿는 점도 충돌로 보고 건너뛴다 (우회 경로는 만들지 않음).
// 장애물당 선형 검사라 큰 벽에서는 느림 - 공간 인덱스 없이 O(면적/step²·장애물 수).
func GeneratePath(wallWidth, wallHeight float64, obstacles []Rect) [][]float64 {
	path := make([][]float64, 0)

	currentX := 0.0
	currentY := 0.0
	direction := 1.0 // 1: 오른쪽, -1: 왼쪽

	for currentY <= wallHeight {
		// 현재 행을 끝까지 스캔
		for 0 <= currentX && currentX <= wallWidth {
			if !collides(currentX, currentY, obstacles) {
				path = append(path, []float64{currentX, currentY})
			}
			currentX += StepSize * direction
		}

		// 경계 밖으로 나간 한 칸을 되돌리고 다음 행으로
		currentX -= StepSize * direction
		currentY += StepSize
		direction *= -1
	}

	return path
}
