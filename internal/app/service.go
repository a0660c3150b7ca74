package app

import (
	"context"
	"strings"
	"time"

	"booking_api/internal/domain"
)

const (
	hotelKeyPrefix = "hotel:"
	hotelsAllKey   = "hotels:all"
)

// BookingService orchestrates identity, policy and the two repositories.
// The cache is optional; a nil cache disables hotel read caching.
type BookingService struct {
	hotels       domain.HotelRepository
	reservations domain.ReservationRepository
	policy       domain.Policy
	cache        domain.Cache
	cacheTTL     time.Duration
}

func NewBookingService(
	hotels domain.HotelRepository,
	reservations domain.ReservationRepository,
	policy domain.Policy,
	cache domain.Cache,
	ttl time.Duration,
) *BookingService {
	return &BookingService{
		hotels:       hotels,
		reservations: reservations,
		policy:       policy,
		cache:        cache,
		cacheTTL:     ttl,
	}
}

// ---- hotels ----

func (s *BookingService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	var cached []domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, hotelsAllKey, &cached); ok {
			return cached, nil
		}
	}
	hs, err := s.hotels.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, hotelsAllKey, hs, int(s.cacheTTL.Seconds()))
	}
	return hs, nil
}

func (s *BookingService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := hotelKeyPrefix + id
	if s.cache != nil {
		var cached domain.Hotel
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	h, err := s.hotels.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

// SearchHotels splits the query on single spaces and matches hotels whose
// name or location contains any term. Results are not cached; the term space
// is unbounded and hit rates would be poor.
func (s *BookingService) SearchHotels(ctx context.Context, query string) ([]domain.Hotel, error) {
	return s.hotels.SearchHotels(ctx, strings.Split(query, " "))
}

func (s *BookingService) CreateHotel(ctx context.Context, ident *domain.Identity, name, location string) (domain.Hotel, error) {
	if ident == nil {
		return domain.Hotel{}, domain.ErrUnauthenticated
	}
	if !s.policy.CanCreateHotels(*ident) {
		return domain.Hotel{}, domain.ErrForbidden
	}
	h, err := s.hotels.CreateHotel(ctx, name, location)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidateHotelList(ctx)
	return h, nil
}

func (s *BookingService) DeleteHotel(ctx context.Context, ident *domain.Identity, id string) error {
	if ident == nil {
		return domain.ErrUnauthenticated
	}
	if !s.policy.CanDeleteHotels(*ident) {
		return domain.ErrForbidden
	}
	n, err := s.hotels.DeleteHotel(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelKeyPrefix+id)
	}
	s.invalidateHotelList(ctx)
	return nil
}

func (s *BookingService) invalidateHotelList(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelsAllKey)
	}
}

// ---- reservations ----
// The resolved user id is injected into every repository call; callers can
// only ever touch their own reservations.

func (s *BookingService) ListReservations(ctx context.Context, ident *domain.Identity, hotelID string) ([]domain.ReservationView, error) {
	if ident == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.reservations.ListReservations(ctx, hotelID, ident.UserID)
}

func (s *BookingService) GetReservation(ctx context.Context, ident *domain.Identity, hotelID, reservationID string) (domain.ReservationView, error) {
	if ident == nil {
		return domain.ReservationView{}, domain.ErrUnauthenticated
	}
	return s.reservations.GetReservation(ctx, hotelID, reservationID, ident.UserID)
}

func (s *BookingService) CreateReservation(ctx context.Context, ident *domain.Identity, hotelID string, from, to time.Time, comment *string) (domain.Reservation, error) {
	if ident == nil {
		return domain.Reservation{}, domain.ErrUnauthenticated
	}
	return s.reservations.CreateReservation(ctx, hotelID, ident.UserID, from, to, comment)
}

func (s *BookingService) DeleteReservation(ctx context.Context, ident *domain.Identity, hotelID, reservationID string) error {
	if ident == nil {
		return domain.ErrUnauthenticated
	}
	n, err := s.reservations.DeleteReservation(ctx, hotelID, reservationID, ident.UserID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *BookingService) ListUserReservations(ctx context.Context, ident *domain.Identity) ([]domain.ReservationView, error) {
	if ident == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.reservations.ListUserReservations(ctx, ident.UserID)
}
