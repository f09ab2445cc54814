package services

import (
	"fmt"
	"strings"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"
)

// ChatNotifier fans a persisted message out to the trip's live
// subscribers. The websocket hub implements it; tests use a fake.
type ChatNotifier interface {
	Publish(tripID int64, msg models.ChatMessage)
}

// ChatService handles a trip's message history. Persistence first, then
// fan-out: a message that is not in the table is never broadcast.
type ChatService struct {
	ChatRepo  repositories.ChatRepository
	TripRepo  repositories.TripRepository
	Notifier  ChatNotifier
	RequestID string
}

// Send appends a message to the trip's conversation. Only the customer and
// the assigned driver may write or read.
func (s ChatService) Send(senderID string, tripID int64, content string) (models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatMessage{}, domain.ValidationError{Field: "content", Msg: "el mensaje no puede estar vacío"}
	}

	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if !trip.IsParticipant(senderID) {
		return models.ChatMessage{}, domain.UnauthorizedError{Msg: "no participás de este viaje"}
	}

	msg, err := s.ChatRepo.Insert(tripID, senderID, content)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if s.Notifier != nil {
		s.Notifier.Publish(tripID, msg)
	}
	utils.LogEvent(s.RequestID, "chat", "send", fmt.Sprintf("trip_id=%d sender_id=%s message_id=%d", tripID, senderID, msg.ID))
	return msg, nil
}

// History returns the trip's full conversation, oldest first.
func (s ChatService) History(userID string, tripID int64) ([]models.ChatMessage, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsParticipant(userID) {
		return nil, domain.UnauthorizedError{Msg: "no participás de este viaje"}
	}
	return s.ChatRepo.ListByTrip(tripID)
}

// CanJoin reports whether userID may subscribe to the trip's live channel.
func (s ChatService) CanJoin(userID string, tripID int64) error {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return err
	}
	if !trip.IsParticipant(userID) {
		return domain.UnauthorizedError{Msg: "no participás de este viaje"}
	}
	return nil
}
