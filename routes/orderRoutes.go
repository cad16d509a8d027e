package routes

import (
	"github.com/bekosher/bekosher-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, controller *controllers.OrderController, auth gin.HandlerFunc) {
	orders := server.Group("/api/orders", auth)
	{
		orders.POST("", controller.CreateOrder)
		orders.GET("", controller.GetOrders)
		orders.GET("/:id", controller.GetOrder)
		orders.PATCH("/:id/status", controller.UpdateOrderStatus)
	}
}
