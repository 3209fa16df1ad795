package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-market/api-go/models"
	"github.com/campus-market/api-go/storage"
	"github.com/campus-market/api-go/utils"
)

type UserController struct {
	DB    *gorm.DB
	Store storage.Storage
}

func NewUserController(db *gorm.DB, store storage.Storage) *UserController {
	return &UserController{DB: db, Store: store}
}

type UpdateUserRequest struct {
	FirstName   *string `form:"firstName" json:"firstName"`
	LastName    *string `form:"lastName" json:"lastName"`
	PhoneNumber *string `form:"phoneNumber" json:"phoneNumber"`
	Role        *string `form:"role" json:"role" binding:"omitempty,oneof=user admin"`
}

// GetUsers lists every account. Admin only (enforced by the route).
func (uc *UserController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Println("listing users:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser lets a user edit their own profile, or an admin edit anyone.
// Only an admin may change the role. Omitted fields keep their values.
func (uc *UserController) UpdateUser(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CanModify(claims, user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this user"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil && claims.Role == models.RoleAdmin {
		user.Role = *req.Role
	}

	if file, err := c.FormFile("profilePhoto"); err == nil {
		newPhoto, err := uc.Store.Save(file)
		if err != nil {
			log.Println("saving profile photo:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if user.ProfilePhoto != "" {
			if err := uc.Store.Delete(user.ProfilePhoto); err != nil {
				log.Println("deleting old profile photo:", err)
			}
		}
		user.ProfilePhoto = newPhoto
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("updating user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the account along with its profile photo, its items
// and their photos. Self or admin.
func (uc *UserController) DeleteUser(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CanModify(claims, user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this user"})
		return
	}

	if user.ProfilePhoto != "" {
		if err := uc.Store.Delete(user.ProfilePhoto); err != nil {
			log.Println("deleting profile photo:", err)
		}
	}

	var items []models.Item
	if err := uc.DB.Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
		log.Println("loading user items:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	for _, item := range items {
		if item.Photo != "" {
			if err := uc.Store.Delete(item.Photo); err != nil {
				log.Println("deleting item photo:", err)
			}
		}
	}

	if err := uc.DB.Where("user_id = ?", user.ID).Delete(&models.Item{}).Error; err != nil {
		log.Println("deleting user items:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		log.Println("deleting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}
