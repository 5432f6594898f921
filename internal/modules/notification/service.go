package notification

import (
	"context"
	"time"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingConfirmed EventType = "booking_confirmed"
	EventBookingDeclined  EventType = "booking_declined"
	EventBookingCancelled EventType = "booking_cancelled"
)

type Event struct {
	Type      EventType  `json:"type"`
	BookingID int64      `json:"booking_id"`
	ArtistID  int64      `json:"artist_id,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	SentAt    time.Time  `json:"sent_at"`
}

// Service pushes booking events over the hub. All methods are fire-and-forget
// from the caller's point of view: an offline recipient is not an error.
type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

func (s *Service) NotifyBookingCreated(_ context.Context, artistUserID, bookingID, artistID int64, start time.Time) error {
	s.hub.SendToUser(artistUserID, Event{
		Type:      EventBookingCreated,
		BookingID: bookingID,
		ArtistID:  artistID,
		StartsAt:  &start,
		SentAt:    time.Now(),
	})
	return nil
}

func (s *Service) NotifyBookingConfirmed(_ context.Context, customerID, bookingID int64) error {
	s.hub.SendToUser(customerID, Event{
		Type:      EventBookingConfirmed,
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}

func (s *Service) NotifyBookingDeclined(_ context.Context, customerID, bookingID int64) error {
	s.hub.SendToUser(customerID, Event{
		Type:      EventBookingDeclined,
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}

func (s *Service) NotifyBookingCancelled(_ context.Context, artistUserID, bookingID int64) error {
	s.hub.SendToUser(artistUserID, Event{
		Type:      EventBookingCancelled,
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}
