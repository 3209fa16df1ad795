package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campus-market/api-go/models"
	"github.com/campus-market/api-go/storage"
	"github.com/campus-market/api-go/utils"
)

type AuthController struct {
	DB    *gorm.DB
	Store storage.Storage
}

func NewAuthController(db *gorm.DB, store storage.Storage) *AuthController {
	return &AuthController{DB: db, Store: store}
}

type RegisterRequest struct {
	FirstName   string `form:"firstName" json:"firstName" binding:"required"`
	LastName    string `form:"lastName" json:"lastName" binding:"required"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	Password    string `form:"password" json:"password" binding:"required,min=6"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
	Role        string `form:"role" json:"role" binding:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) register(c *gin.Context, allowAdmin bool) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	role := models.RoleUser
	if allowAdmin && req.Role != "" {
		role = req.Role
	}

	var profilePhoto string
	if file, err := c.FormFile("profilePhoto"); err == nil {
		profilePhoto, err = ac.Store.Save(file)
		if err != nil {
			log.Println("saving profile photo:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     string(hashedPassword),
		PhoneNumber:  req.PhoneNumber,
		ProfilePhoto: profilePhoto,
		Role:         role,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		log.Println("creating user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Println("generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"role":      user.Role,
		"token":     token,
	})
}

// Register creates a regular user account. The role field is ignored here;
// only RegisterAdmin may set it.
func (ac *AuthController) Register(c *gin.Context) {
	ac.register(c, false)
}

// RegisterAdmin is identical to Register but runs behind the admin role
// check, so it may create admin accounts.
func (ac *AuthController) RegisterAdmin(c *gin.Context) {
	ac.register(c, true)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Same response for unknown email and wrong password, so the endpoint
	// cannot be used to probe which emails are registered.
	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Println("generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"role":      user.Role,
		"token":     token,
	})
}

func (ac *AuthController) GetMe(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Verify is the SPA's boot-time token check: it returns the authenticated
// user's summary, confirming the token is still good.
func (ac *AuthController) Verify(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}
