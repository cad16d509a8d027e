package controllers

import (
	"net/http"

	"github.com/bekosher/bekosher-api/services"
	"github.com/gin-gonic/gin"
)

// ProductController manages categories and dishes of the calling
// establishment.
type ProductController struct {
	menu MenuService
}

func NewProductController(menu MenuService) *ProductController {
	return &ProductController{menu: menu}
}

func (c *ProductController) GetCategories(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	categories, err := c.menu.Categories(ctx.Request.Context(), caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

func (c *ProductController) CreateCategory(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.CategoryInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}
	category, err := c.menu.CreateCategory(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Category created successfully.",
		"category": category,
	})
}

func (c *ProductController) UpdateCategory(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "categoryId")
	if !ok {
		return
	}
	var input services.CategoryInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}
	category, err := c.menu.UpdateCategory(ctx.Request.Context(), caller, id, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Category updated successfully.",
		"category": category,
	})
}

func (c *ProductController) DeleteCategory(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "categoryId")
	if !ok {
		return
	}
	if err := c.menu.DeleteCategory(ctx.Request.Context(), caller, id); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully."})
}

func (c *ProductController) GetDishes(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	products, err := c.menu.Products(ctx.Request.Context(), caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"dishes": products})
}

func (c *ProductController) CreateDish(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.ProductInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}
	product, err := c.menu.CreateProduct(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Dish created successfully.",
		"dish":    product,
	})
}

func (c *ProductController) UpdateDish(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "dishId")
	if !ok {
		return
	}
	var input services.ProductInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}
	product, err := c.menu.UpdateProduct(ctx.Request.Context(), caller, id, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Dish updated successfully.",
		"dish":    product,
	})
}

func (c *ProductController) DeleteDish(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "dishId")
	if !ok {
		return
	}
	if err := c.menu.DeleteProduct(ctx.Request.Context(), caller, id); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Dish deleted successfully."})
}
