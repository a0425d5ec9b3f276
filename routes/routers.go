package routes

import (
	"github.com/gin-gonic/gin"

	"roommgmt/controllers"
)

// SetupRoutes đăng ký toàn bộ route của ứng dụng
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/rooms", controllers.GetAllRooms)
		api.POST("/rooms", controllers.CreateRoom)
		api.GET("/rooms/:id", controllers.GetRoomDetail)
		api.DELETE("/rooms/:id", controllers.DeleteRoom)
		api.PUT("/roomUpdate", controllers.UpdateRoom)
		api.PUT("/roomStatus", controllers.ChangeRoomStatus)
		api.GET("/availableRooms", controllers.GetAvailableRooms)

		api.POST("/checkin", controllers.CheckIn)
		api.POST("/checkout/:id", controllers.CheckOut)
		api.GET("/records", controllers.GetCheckInOuts)

		api.GET("/dashboard", controllers.GetDashboard)
		api.GET("/vacancy-data", controllers.GetVacancyData)

		api.GET("/settings", controllers.GetSettings)
		api.PUT("/settings", controllers.UpdateSettings)
	}

	// Alias giữ tương thích với client cũ gọi đường dẫn không có version
	router.GET("/api/vacancy-data", controllers.GetVacancyData)
}
