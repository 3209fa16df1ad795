package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-market/api-go/models"
	"github.com/campus-market/api-go/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type CreateReportRequest struct {
	TargetUserID *uint  `json:"target_user_id"`
	ItemID       *uint  `json:"item_id"`
	Reason       string `json:"reason" binding:"required"`
}

type UpdateReportRequest struct {
	Status string `json:"status" binding:"required,oneof=pending investigating resolved rejected"`
}

// CreateReport files a complaint against exactly one of a user or an item.
func (rc *ReportController) CreateReport(c *gin.Context) {
	claims := utils.GetUser(c)

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (req.TargetUserID == nil) == (req.ItemID == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of target_user_id or item_id must be provided"})
		return
	}

	if req.TargetUserID != nil {
		var target models.User
		if err := rc.DB.First(&target, *req.TargetUserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
			return
		}
	}
	if req.ItemID != nil {
		var item models.Item
		if err := rc.DB.First(&item, *req.ItemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
	}

	report := models.Report{
		ReporterID:   claims.UserID,
		TargetUserID: req.TargetUserID,
		ItemID:       req.ItemID,
		Reason:       req.Reason,
		Status:       models.ReportStatusPending,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		log.Println("creating report:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReports lists all reports with reporter/target summaries, newest
// first. Admin only.
func (rc *ReportController) GetReports(c *gin.Context) {
	var reports []models.Report
	err := rc.DB.Preload("Reporter").Preload("TargetUser").Preload("Item").
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		log.Println("listing reports:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (rc *ReportController) GetReportByID(c *gin.Context) {
	var report models.Report
	err := rc.DB.Preload("Reporter").Preload("TargetUser").Preload("Item").
		First(&report, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateReport moves a report through the triage workflow. Admin only.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.DB.Model(&report).Update("status", req.Status).Error; err != nil {
		log.Println("updating report:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	if err := rc.DB.Delete(&report).Error; err != nil {
		log.Println("deleting report:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report removed"})
}
