package app

import "time"

// Event is one booked journey occupying a contiguous range of slots on one
// weekday. Postcodes, destination and miles are derived from the site registry
// at save time; the record is always written whole, never patched.
type Event struct {
	ID            string    `json:"id,omitempty"`
	UserID        string    `json:"user_id"`
	Day           string    `json:"day"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Name          string    `json:"name"`
	Purpose       string    `json:"purpose"`
	Type          string    `json:"type,omitempty"`
	StartPostcode string    `json:"start_postcode"`
	EndPostcode   string    `json:"end_postcode"`
	Destination   string    `json:"destination"`
	Miles         string    `json:"miles"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// User is a local or Google-linked account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	GoogleSub    string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// ReportRow is one line of the mileage report, in export column order.
type ReportRow struct {
	Day           string `json:"day"`
	Type          string `json:"type"`
	StartPostcode string `json:"start_postcode"`
	EndPostcode   string `json:"end_postcode"`
	Destination   string `json:"destination"`
	Purpose       string `json:"purpose"`
	Miles         string `json:"miles"`
}
