package model

import "github.com/jackc/pgx/v5/pgtype"

// DefaultImageURL is served for users who registered without an avatar.
const DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

type User struct {
	ID        int64              `json:"id"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	ImageURL  *string            `json:"image_url,omitempty"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Image returns the stored avatar URL or the placeholder when none was set.
func (u *User) Image() string {
	if u.ImageURL == nil || *u.ImageURL == "" {
		return DefaultImageURL
	}
	return *u.ImageURL
}
