package routes

import (
	"github.com/bekosher/bekosher-api/controllers"
	"github.com/bekosher/bekosher-api/middlewares"
	"github.com/bekosher/bekosher-api/models"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, controller *controllers.AdminController, auth gin.HandlerFunc) {
	admin := server.Group("/api/admin", auth, middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/establishments", controller.GetEstablishments)
		admin.PATCH("/establishments/:id/approve", controller.ApproveEstablishment)
		admin.PATCH("/establishments/:id/reject", controller.RejectEstablishment)
	}
}
