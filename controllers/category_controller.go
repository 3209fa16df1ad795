package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{}

func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GetCategories returns the fixed category catalog the listing form uses.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, []Category{
		{ID: 1, Name: "Books"},
		{ID: 2, Name: "Electronics"},
		{ID: 3, Name: "Furniture"},
		{ID: 4, Name: "Clothing"},
	})
}
