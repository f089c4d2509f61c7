package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"mural-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 인스턴스
var db *gorm.DB

// 기본 SQLite 파일 경로 (SQLITE_PATH 미설정 시)
const defaultSQLitePath = "coverage_planning.db"

// InitDatabase - 환경 변수로 DB 연결
// MYSQL_HOST가 설정되어 있으면 MySQL, 아니면 SQLite 파일 사용
func InitDatabase() error {
	dialector, err := dialectorFromEnv()
	if err != nil {
		return err
	}

	var errDB error
	db, errDB = gorm.Open(dialector, &gorm.Config{})
	if errDB != nil {
		return fmt.Errorf("DB 연결 실패: %v", errDB)
	}

	// AutoMigrate - 테이블 자동 생성
	errMigrate := db.AutoMigrate(
		&models.Trajectory{},
	)
	if errMigrate != nil {
		return fmt.Errorf("마이그레이션 실패: %v", errMigrate)
	}

	log.Println("✅ DB 연결 및 마이그레이션 완료")
	return nil
}

// dialectorFromEnv - 환경 변수 기반 스토리지 선택
func dialectorFromEnv() (gorm.Dialector, error) {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		// 기본: 단일 SQLite 파일
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = defaultSQLitePath
		}
		log.Printf("📦 SQLite 저장소 사용: %s", path)
		return sqlite.Open(path), nil
	}

	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	dbname := os.Getenv("MYSQL_DATABASE")

	if user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("MySQL 환경 변수가 모두 설정되지 않았습니다: MYSQL_HOST, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE")
	}

	port, err := strconv.Atoi(os.Getenv("MYSQL_PORT"))
	if err != nil || port == 0 {
		port = 3306 // 기본 포트
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	log.Printf("📡 MySQL 저장소 사용: %s:%d/%s", host, port, dbname)
	return mysql.Open(dsn), nil
}

// GetDB - GORM 인스턴스 반환
func GetDB() *gorm.DB {
	return db
}
