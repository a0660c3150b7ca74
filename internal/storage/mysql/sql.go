package mysql

const listHotelsSQL = `
SELECT id, name, location
FROM hotels
`

const getHotelSQL = `
SELECT id, name, location
FROM hotels
WHERE id = ?
`

const insertHotelSQL = `
INSERT INTO hotels (id, name, location)
VALUES (?, ?, ?)
`

// Reservations referencing the hotel go with it via the ON DELETE CASCADE FK.
const deleteHotelSQL = `
DELETE FROM hotels WHERE id = ?
`

// searchHotelsPrefix is completed per-request with one
// "(name LIKE ? OR location LIKE ?)" clause per search term, OR-joined.
// The columns use an accent/case-insensitive collation, so LIKE matches
// substrings regardless of case.
const searchHotelsPrefix = `
SELECT id, name, location
FROM hotels
WHERE `

const listReservationsSQL = `
SELECT id, from_ts, to_ts, comment
FROM reservations
WHERE hotel_id = ? AND user_id = ?
`

const getReservationSQL = `
SELECT id, from_ts, to_ts, comment
FROM reservations
WHERE id = ? AND hotel_id = ? AND user_id = ?
`

const insertReservationSQL = `
INSERT INTO reservations (id, hotel_id, user_id, from_ts, to_ts, comment)
VALUES (?, ?, ?, ?, ?, ?)
`

const deleteReservationSQL = `
DELETE FROM reservations
WHERE id = ? AND hotel_id = ? AND user_id = ?
`

const listUserReservationsSQL = `
SELECT id, from_ts, to_ts, comment
FROM reservations
WHERE user_id = ?
`
