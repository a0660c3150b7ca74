package domain

import "time"

type Reservation struct {
	ID      string    `json:"id"`
	Hotel   Hotel     `json:"hotel"`
	UserID  string    `json:"userId"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Comment *string   `json:"comment,omitempty"`
}

// ReservationView is the projection returned by list/get endpoints.
// The owning hotel is implied by the request path, so it is omitted.
type ReservationView struct {
	ID      string    `json:"id"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Comment *string   `json:"comment,omitempty"`
}

// MaxCommentLen caps the optional reservation comment.
const MaxCommentLen = 1000
