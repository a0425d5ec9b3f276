package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func init() {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll("logs", 0755); err != nil {
		Logger.Fatal(err)
	}

	// Tạo file log theo ngày, ghi song song ra stdout
	timestamp := time.Now().Format("2006-01-02")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/app-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Fatal(err)
	}
	Logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
}

// LogInfo ghi log thông tin
func LogInfo(format string, v ...interface{}) {
	Logger.Infof(format, v...)
}

// LogError ghi log lỗi
func LogError(format string, v ...interface{}) {
	Logger.Errorf(format, v...)
}
