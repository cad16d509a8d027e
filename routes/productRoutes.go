package routes

import (
	"github.com/bekosher/bekosher-api/controllers"
	"github.com/bekosher/bekosher-api/middlewares"
	"github.com/bekosher/bekosher-api/models"
	"github.com/gin-gonic/gin"
)

// EstablishmentRoutes registers the back office of the calling
// establishment.
func EstablishmentRoutes(server *gin.Engine, profile *controllers.ProfileController, hours *controllers.HoursController, products *controllers.ProductController, auth gin.HandlerFunc) {
	establishment := server.Group("/api/establishment", auth, middlewares.RequireRole(models.RoleEstablishment))
	{
		establishment.GET("/profile", profile.GetProfile)
		establishment.PATCH("/profile", profile.UpdateProfile)
		establishment.POST("/delivery-settings", profile.UpdateDeliverySettings)

		establishment.GET("/operating-hours", hours.GetOperatingHours)
		establishment.POST("/operating-hours", hours.ReplaceOperatingHours)
		establishment.GET("/delivery-hours", hours.GetDeliveryHours)
		establishment.POST("/delivery-hours", hours.ReplaceDeliveryHours)

		establishment.GET("/category", products.GetCategories)
		establishment.POST("/category", products.CreateCategory)
		establishment.PATCH("/category/:categoryId", products.UpdateCategory)
		establishment.DELETE("/category/:categoryId", products.DeleteCategory)

		establishment.GET("/dish", products.GetDishes)
		establishment.POST("/dish", products.CreateDish)
		establishment.PATCH("/dish/:dishId", products.UpdateDish)
		establishment.DELETE("/dish/:dishId", products.DeleteDish)
	}
}
