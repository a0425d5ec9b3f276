package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ tệp `.env`
func LoadEnv() error {
	return godotenv.Load()
}

// GetEnv lấy biến môi trường, trả về fallback nếu không có
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
