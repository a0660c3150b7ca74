package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	// SearchHotels matches any hotel whose name or location contains any of
	// the terms as a substring (case-insensitive, OR across terms and fields).
	SearchHotels(ctx context.Context, terms []string) ([]Hotel, error)
	CreateHotel(ctx context.Context, name, location string) (Hotel, error)
	// DeleteHotel returns the number of hotel rows removed; reservations
	// referencing the hotel are cascaded at the store level.
	DeleteHotel(ctx context.Context, id string) (int64, error)
}

type ReservationRepository interface {
	ListReservations(ctx context.Context, hotelID, userID string) ([]ReservationView, error)
	GetReservation(ctx context.Context, hotelID, reservationID, userID string) (ReservationView, error)
	// CreateReservation verifies the hotel exists inside the same transaction
	// as the insert; a missing hotel yields ErrNotFound.
	CreateReservation(ctx context.Context, hotelID, userID string, from, to time.Time, comment *string) (Reservation, error)
	DeleteReservation(ctx context.Context, hotelID, reservationID, userID string) (int64, error)
	ListUserReservations(ctx context.Context, userID string) ([]ReservationView, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
