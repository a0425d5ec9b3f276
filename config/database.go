package config

import (
	"fmt"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"roommgmt/constants"
	"roommgmt/models"
	"roommgmt/utils"
)

var DB *gorm.DB

func buildDialector() gorm.Dialector {
	host := GetEnv("DB_HOST", "")
	if host == "" {
		// Không cấu hình Postgres thì dùng file SQLite cho bản chạy một người vận hành
		return sqlite.Open(GetEnv("DB_PATH", "room_management.db"))
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host,
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_NAME", "room_management"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"))
	return postgres.Open(dsn)
}

func ConnectDB() error {
	var err error
	DB, err = gorm.Open(buildDialector(), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("không thể kết nối cơ sở dữ liệu: %v", err)
	}

	if err := MigrateAndSeed(DB); err != nil {
		return err
	}

	utils.LogInfo("Kết nối cơ sở dữ liệu thành công")
	return nil
}

// MigrateAndSeed migrate các bảng, tạo tiêu chí mặc định và phòng mẫu cho lần chạy đầu
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Room{}, &models.CheckInOut{}, &models.VacancySettings{}); err != nil {
		return fmt.Errorf("không thể migrate bảng: %v", err)
	}

	var settingsCount int64
	if err := db.Model(&models.VacancySettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		defaults := models.VacancySettings{
			EarlyCheckoutDay: getEnvInt("DEFAULT_EARLY_CHECKOUT_DAY", constants.DefaultEarlyCheckoutDay),
			LateCheckoutDay:  getEnvInt("DEFAULT_LATE_CHECKOUT_DAY", constants.DefaultLateCheckoutDay),
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount == 0 {
		sampleRooms := []models.Room{
			{RoomNumber: "101", RoomType: "Standard", Floor: 1, IsActive: true},
			{RoomNumber: "102", RoomType: "Standard", Floor: 1, IsActive: true},
			{RoomNumber: "103", RoomType: "Deluxe", Floor: 1, IsActive: true},
			{RoomNumber: "201", RoomType: "Standard", Floor: 2, IsActive: true},
			{RoomNumber: "202", RoomType: "Deluxe", Floor: 2, IsActive: true},
			{RoomNumber: "203", RoomType: "Suite", Floor: 2, IsActive: true},
			{RoomNumber: "301", RoomType: "Standard", Floor: 3, IsActive: true},
			{RoomNumber: "302", RoomType: "Suite", Floor: 3, IsActive: true},
		}
		if err := db.Create(&sampleRooms).Error; err != nil {
			return err
		}
	}

	return nil
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
