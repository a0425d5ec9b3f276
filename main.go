package main

import (
	"github.com/gin-gonic/gin"

	"roommgmt/config"
	"roommgmt/jobs"
	"roommgmt/routes"
	"roommgmt/services"
	"roommgmt/utils"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		utils.Logger.Fatalf("Không thể khởi tạo ứng dụng: %v", err)
	}

	services.SetMelody(m)

	jobs.SetVacancyReportRefresher(services.NewVacancyReportService(config.DB))
	jobs.InitCronJobs(c)

	config.InitWebSocket(router, m)
	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	port := config.GetEnv("PORT", "8080")
	utils.LogInfo("Server đang chạy tại cổng %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.Logger.Fatalf("Không thể khởi động server: %v", err)
	}
}
