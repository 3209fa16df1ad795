package controllers

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-market/api-go/models"
	"github.com/campus-market/api-go/utils"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Conversation is the per-counterparty aggregate derived from the message
// table: who the thread is with, its latest message, and how many of their
// messages the requester has not read yet.
type Conversation struct {
	OtherUser     uint               `json:"otherUser"`
	OtherUserInfo models.UserSummary `json:"otherUserInfo"`
	LatestMessage models.Message     `json:"latestMessage"`
	UnreadCount   int64              `json:"unreadCount"`
}

func (mc *MessageController) SendMessage(c *gin.Context) {
	claims := utils.GetUser(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var receiver models.User
	if err := mc.DB.First(&receiver, req.ReceiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		return
	}

	message := models.Message{
		SenderID:   claims.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Read:       false,
	}

	if err := mc.DB.Create(&message).Error; err != nil {
		log.Println("creating message:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetConversation returns the full thread with another user, oldest first,
// and marks every message they sent to the requester as read. Reading the
// thread is the only "mark all read" action the client has.
func (mc *MessageController) GetConversation(c *gin.Context) {
	claims := utils.GetUser(c)

	var other models.User
	if err := mc.DB.First(&other, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var messages []models.Message
	err := mc.DB.Preload("Sender").Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			claims.UserID, other.ID, other.ID, claims.UserID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		log.Println("loading conversation:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	err = mc.DB.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", other.ID, claims.UserID, false).
		Update("read", true).Error
	if err != nil {
		log.Println("marking conversation read:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetConversations derives the requester's conversation list: the distinct
// set of counterparts across sent and received messages, each with the
// latest message between the two and the unread count.
func (mc *MessageController) GetConversations(c *gin.Context) {
	claims := utils.GetUser(c)

	var sentTo []uint
	err := mc.DB.Model(&models.Message{}).
		Where("sender_id = ?", claims.UserID).
		Distinct().
		Pluck("receiver_id", &sentTo).Error
	if err != nil {
		log.Println("listing counterparts:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var receivedFrom []uint
	err = mc.DB.Model(&models.Message{}).
		Where("receiver_id = ?", claims.UserID).
		Distinct().
		Pluck("sender_id", &receivedFrom).Error
	if err != nil {
		log.Println("listing counterparts:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	seen := make(map[uint]bool)
	var counterparts []uint
	for _, id := range append(sentTo, receivedFrom...) {
		if !seen[id] {
			seen[id] = true
			counterparts = append(counterparts, id)
		}
	}

	conversations := make([]Conversation, 0, len(counterparts))
	for _, otherID := range counterparts {
		var latest models.Message
		err := mc.DB.Preload("Sender").Preload("Receiver").
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				claims.UserID, otherID, otherID, claims.UserID).
			Order("created_at DESC, id DESC").
			First(&latest).Error
		if err != nil {
			log.Println("loading latest message:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		var unread int64
		err = mc.DB.Model(&models.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND read = ?", otherID, claims.UserID, false).
			Count(&unread).Error
		if err != nil {
			log.Println("counting unread:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		// The counterpart's record can be gone if the account was
		// deleted; the thread still lists with a blank summary.
		other := latest.Sender
		if latest.SenderID == claims.UserID {
			other = latest.Receiver
		}
		var otherInfo models.UserSummary
		if other != nil {
			otherInfo = other.Summary()
		}

		conversations = append(conversations, Conversation{
			OtherUser:     otherID,
			OtherUserInfo: otherInfo,
			LatestMessage: latest,
			UnreadCount:   unread,
		})
	}

	// Most recently active thread first.
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LatestMessage.CreatedAt.After(conversations[j].LatestMessage.CreatedAt)
	})

	c.JSON(http.StatusOK, conversations)
}

// MarkAsRead flips the read flag; only the receiver may do it.
func (mc *MessageController) MarkAsRead(c *gin.Context) {
	claims := utils.GetUser(c)

	var message models.Message
	if err := mc.DB.First(&message, c.Param("messageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if message.ReceiverID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this message"})
		return
	}

	if err := mc.DB.Model(&message).Update("read", true).Error; err != nil {
		log.Println("marking message read:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// DeleteMessage removes a message; sender or admin.
func (mc *MessageController) DeleteMessage(c *gin.Context) {
	claims := utils.GetUser(c)

	var message models.Message
	if err := mc.DB.First(&message, c.Param("messageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if !utils.CanModify(claims, message.SenderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this message"})
		return
	}

	if err := mc.DB.Delete(&message).Error; err != nil {
		log.Println("deleting message:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
