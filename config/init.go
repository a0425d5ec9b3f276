package config

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	middlewares "roommgmt/middleware"
	"roommgmt/utils"
)

func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AllowAllOrigins = true
	router.Use(cors.New(configCors))
	router.Use(middlewares.RequestLogger())

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		utils.LogInfo("Không thể nạp file .env, sử dụng biến môi trường hệ thống nếu có")
	}

	if err := ConnectDB(); err != nil {
		return err
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		utils.LogInfo("Không kết nối được Redis, bỏ qua cache: %v", err)
	}

	utils.LogInfo("All components initialized successfully")
	return nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	utils.LogInfo("WebSocket initialized successfully")
}
