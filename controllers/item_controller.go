package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-market/api-go/models"
	"github.com/campus-market/api-go/storage"
	"github.com/campus-market/api-go/utils"
)

type ItemController struct {
	DB    *gorm.DB
	Store storage.Storage
}

func NewItemController(db *gorm.DB, store storage.Storage) *ItemController {
	return &ItemController{DB: db, Store: store}
}

type CreateItemRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Category    string  `form:"category" binding:"required"`
	Condition   string  `form:"condition" binding:"required"`
}

type UpdateItemRequest struct {
	Title       *string  `form:"title"`
	Description *string  `form:"description"`
	Price       *float64 `form:"price" binding:"omitempty,gt=0"`
	Category    *string  `form:"category"`
	Condition   *string  `form:"condition"`
	Status      *string  `form:"status" binding:"omitempty,oneof=available sold"`
	Approved    *bool    `form:"approved"`
}

// CreateItem persists a new listing. It starts unapproved and invisible to
// the public until an admin flips the approval gate.
func (ic *ItemController) CreateItem(c *gin.Context) {
	claims := utils.GetUser(c)

	var req CreateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var photo string
	if file, err := c.FormFile("photo"); err == nil {
		photo, err = ic.Store.Save(file)
		if err != nil {
			log.Println("saving item photo:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
	}

	item := models.Item{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Photo:       photo,
		Status:      models.ItemStatusAvailable,
		Approved:    false,
		UserID:      claims.UserID,
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		log.Println("creating item:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetItems lists items newest-first with optional category/status filters.
// Admins may additionally filter by approval; everyone else only ever sees
// approved items here, whatever they ask for.
func (ic *ItemController) GetItems(c *gin.Context) {
	claims := utils.GetUser(c)

	query := ic.DB.Preload("User").Order("created_at DESC")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if claims.Role == models.RoleAdmin {
		if approved := c.Query("approved"); approved != "" {
			query = query.Where("approved = ?", approved == "true")
		}
	} else {
		query = query.Where("approved = ?", true)
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		log.Println("listing items:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (ic *ItemController) GetItemByID(c *gin.Context) {
	claims := utils.GetUser(c)

	var item models.Item
	if err := ic.DB.Preload("User").First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if !item.Approved && !utils.CanModify(claims, item.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem applies a partial update. Owner or admin; only an admin can
// change approval. A replacement photo deletes the previous file.
func (ic *ItemController) UpdateItem(c *gin.Context) {
	claims := utils.GetUser(c)

	var item models.Item
	if err := ic.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if !utils.CanModify(claims, item.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this item"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Condition != nil {
		item.Condition = *req.Condition
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Approved != nil && claims.Role == models.RoleAdmin {
		item.Approved = *req.Approved
	}

	if file, err := c.FormFile("photo"); err == nil {
		newPhoto, err := ic.Store.Save(file)
		if err != nil {
			log.Println("saving item photo:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if item.Photo != "" {
			if err := ic.Store.Delete(item.Photo); err != nil {
				log.Println("deleting old item photo:", err)
			}
		}
		item.Photo = newPhoto
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		log.Println("updating item:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	claims := utils.GetUser(c)

	var item models.Item
	if err := ic.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if !utils.CanModify(claims, item.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this item"})
		return
	}

	if item.Photo != "" {
		if err := ic.Store.Delete(item.Photo); err != nil {
			log.Println("deleting item photo:", err)
		}
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		log.Println("deleting item:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// GetUserItems lists everything a given user has posted, newest-first.
func (ic *ItemController) GetUserItems(c *gin.Context) {
	var items []models.Item
	err := ic.DB.Preload("User").
		Where("user_id = ?", c.Param("userId")).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		log.Println("listing user items:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetFeaturedItems returns the newest approved, still-available items for
// the landing page.
func (ic *ItemController) GetFeaturedItems(c *gin.Context) {
	ic.approvedAvailable(c, 10)
}

// GetRecentItems is the smaller home-page strip of latest listings.
func (ic *ItemController) GetRecentItems(c *gin.Context) {
	ic.approvedAvailable(c, 4)
}

func (ic *ItemController) approvedAvailable(c *gin.Context, defaultLimit int) {
	limit := defaultLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var items []models.Item
	err := ic.DB.Preload("User").
		Where("approved = ? AND status = ?", true, models.ItemStatusAvailable).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		log.Println("listing items:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
