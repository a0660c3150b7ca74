package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"booking_api/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func ptrStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- hotels ----

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotels(rows)
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&h.ID, &h.Name, &h.Location)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *Repo) SearchHotels(ctx context.Context, terms []string) ([]domain.Hotel, error) {
	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)*2)
	for _, t := range terms {
		if t == "" {
			continue
		}
		pat := "%" + likeEscaper.Replace(t) + "%"
		conds = append(conds, "(name LIKE ? OR location LIKE ?)")
		args = append(args, pat, pat)
	}
	// No usable terms: nothing can match, skip the roundtrip.
	if len(conds) == 0 {
		return []domain.Hotel{}, nil
	}
	rows, err := r.db.QueryContext(ctx, searchHotelsPrefix+strings.Join(conds, " OR "), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotels(rows)
}

func (r *Repo) CreateHotel(ctx context.Context, name, location string) (domain.Hotel, error) {
	h := domain.Hotel{ID: uuid.NewString(), Name: name, Location: location}
	if _, err := r.db.ExecContext(ctx, insertHotelSQL, h.ID, h.Name, h.Location); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *Repo) DeleteHotel(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteHotelSQL, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanHotels(rows *sql.Rows) ([]domain.Hotel, error) {
	out := []domain.Hotel{}
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- reservations ----

func (r *Repo) ListReservations(ctx context.Context, hotelID, userID string) ([]domain.ReservationView, error) {
	rows, err := r.db.QueryContext(ctx, listReservationsSQL, hotelID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservationViews(rows)
}

func (r *Repo) GetReservation(ctx context.Context, hotelID, reservationID, userID string) (domain.ReservationView, error) {
	var (
		rv      domain.ReservationView
		comment sql.NullString
	)
	err := r.db.QueryRowContext(ctx, getReservationSQL, reservationID, hotelID, userID).
		Scan(&rv.ID, &rv.From, &rv.To, &comment)
	if err == sql.ErrNoRows {
		return domain.ReservationView{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ReservationView{}, err
	}
	rv.Comment = ptrStr(comment)
	return rv, nil
}

// CreateReservation checks the hotel and inserts in one transaction, so a
// concurrent hotel delete cannot slip between the check and the insert.
func (r *Repo) CreateReservation(ctx context.Context, hotelID, userID string, from, to time.Time, comment *string) (domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Reservation{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var h domain.Hotel
	err = tx.QueryRowContext(ctx, getHotelSQL, hotelID).Scan(&h.ID, &h.Name, &h.Location)
	if err == sql.ErrNoRows {
		return domain.Reservation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Reservation{}, err
	}

	res := domain.Reservation{
		ID:      uuid.NewString(),
		Hotel:   h,
		UserID:  userID,
		From:    from.UTC(),
		To:      to.UTC(),
		Comment: comment,
	}
	if _, err := tx.ExecContext(ctx, insertReservationSQL,
		res.ID, h.ID, userID, res.From, res.To, valStr(comment),
	); err != nil {
		return domain.Reservation{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

func (r *Repo) DeleteReservation(ctx context.Context, hotelID, reservationID, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteReservationSQL, reservationID, hotelID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repo) ListUserReservations(ctx context.Context, userID string) ([]domain.ReservationView, error) {
	rows, err := r.db.QueryContext(ctx, listUserReservationsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservationViews(rows)
}

func scanReservationViews(rows *sql.Rows) ([]domain.ReservationView, error) {
	out := []domain.ReservationView{}
	for rows.Next() {
		var (
			rv      domain.ReservationView
			comment sql.NullString
		)
		if err := rows.Scan(&rv.ID, &rv.From, &rv.To, &comment); err != nil {
			return nil, err
		}
		rv.Comment = ptrStr(comment)
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
