package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tradehub/db"
	"tradehub/models"
	"tradehub/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMessage stores a contact-form submission.
func CreateMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("CreateMessage decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.Subject == "" || payload.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	now := time.Now()
	msg := models.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      payload.Name,
		Email:     payload.Email,
		Subject:   payload.Subject,
		Message:   payload.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.ContactsCollection.InsertOne(ctx, msg); err != nil {
		log.Println("CreateMessage InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error submitting message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Thank you for your message! We will get back to you soon.",
		"data": utils.M{
			"id":   msg.MessageID,
			"name": msg.Name,
		},
	})
}

// GetMessages returns contact messages, newest first, optional ?unread=true.
func GetMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if r.URL.Query().Get("unread") == "true" {
		filter["isRead"] = false
	}

	cursor, err := db.ContactsCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("GetMessages Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching messages")
		return
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		log.Println("GetMessages cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching messages")
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(messages),
		"data":    messages,
	})
}

// MarkRead flags a message as read by admin.
func MarkRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var msg models.ContactMessage
	err := db.ContactsCollection.FindOneAndUpdate(ctx,
		bson.M{"messageId": ps.ByName("id")},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Message not found")
		return
	}
	if err != nil {
		log.Println("MarkRead FindOneAndUpdate error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating message")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Message marked as read",
		"data":    msg,
	})
}
