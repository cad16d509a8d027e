package routes

import (
	"github.com/bekosher/bekosher-api/controllers"
	"github.com/gin-gonic/gin"
)

func PublicRoutes(server *gin.Engine, establishments *controllers.EstablishmentController, address *controllers.AddressController) {
	public := server.Group("/api")
	{
		public.GET("/establishments", establishments.GetEstablishments)
		public.GET("/establishments/:id/menu", establishments.GetMenu)
		public.GET("/establishments/:id/availability", establishments.GetAvailability)
		public.GET("/establishments/:id/qrcode", establishments.GetMenuQRCode)
		public.GET("/address/:cep", address.GetAddress)
	}
}
