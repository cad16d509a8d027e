package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to BeKosher API. Kosher establishments, menus and orders in one place.

The following are the endpoints for this API:

PUBLIC
- GET "/api/establishments" - List approved establishments
- GET "/api/establishments/:id/menu" - Menu with availability
- GET "/api/establishments/:id/availability" - Open and delivery status
- GET "/api/establishments/:id/qrcode" - QR code for the menu
- GET "/api/address/:cep" - Address lookup by CEP

ORDER
- POST "/api/orders" - Place an order
- GET "/api/orders" - List your orders
- GET "/api/orders/:id" - Get order by ID
- PATCH "/api/orders/:id/status" - Update order status

ESTABLISHMENT
- GET|PATCH "/api/establishment/profile" - Profile
- POST "/api/establishment/delivery-settings" - Delivery settings
- GET|POST "/api/establishment/operating-hours" - Operating hours
- GET|POST "/api/establishment/delivery-hours" - Delivery hours
- GET|POST "/api/establishment/category" - Categories
- PATCH|DELETE "/api/establishment/category/:categoryId" - Category by ID
- GET|POST "/api/establishment/dish" - Dishes
- PATCH|DELETE "/api/establishment/dish/:dishId" - Dish by ID

ADMIN
- GET "/api/admin/establishments" - List establishments by status
- PATCH "/api/admin/establishments/:id/approve" - Approve establishment
- PATCH "/api/admin/establishments/:id/reject" - Reject establishment`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
