package services

import (
	"testing"
	"time"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type fakeNotifier struct {
	published []models.ChatMessage
}

func (f *fakeNotifier) Publish(tripID int64, msg models.ChatMessage) {
	f.published = append(f.published, msg)
}

func TestChatSendPersistsThenPublishes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	notifier := &fakeNotifier{}
	svc := ChatService{
		ChatRepo: repositories.ChatRepository{DB: db},
		TripRepo: repositories.TripRepository{DB: db},
		Notifier: notifier,
	}

	mock.ExpectQuery("FROM trips").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns).AddRow(
			7, "cust-1", "driver-1", "Palermo", "Caballito", "cajas",
			100.0, 1.0, 10.0, 30, 15, 15, 10, 22000, "in_transit", "Furgoneta",
			time.Now(), nil, nil, time.Now(),
		))
	mock.ExpectExec("INSERT INTO chat_messages").
		WillReturnResult(sqlmock.NewResult(3, 1))

	msg, err := svc.Send("driver-1", 7, "  llegando en 10  ")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if msg.Content != "llegando en 10" || msg.ID != 3 {
		t.Fatalf("msg = %+v", msg)
	}
	if len(notifier.published) != 1 || notifier.published[0].ID != 3 {
		t.Fatalf("published = %v", notifier.published)
	}
}

func TestChatSendRejectsOutsiders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ChatService{
		ChatRepo: repositories.ChatRepository{DB: db},
		TripRepo: repositories.TripRepository{DB: db},
	}

	mock.ExpectQuery("FROM trips").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns).AddRow(
			7, "cust-1", "driver-1", "Palermo", "Caballito", "cajas",
			100.0, 1.0, 10.0, 30, 15, 15, 10, 22000, "in_transit", "Furgoneta",
			time.Now(), nil, nil, time.Now(),
		))

	_, err = svc.Send("intruso", 7, "hola")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
}

func TestChatSendRejectsEmptyMessage(t *testing.T) {
	svc := ChatService{}
	if _, err := svc.Send("cust-1", 7, "   "); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}
