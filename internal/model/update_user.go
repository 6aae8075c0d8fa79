package model

// UpdateUserDTO overwrites every editable field of a user. The edit form
// always submits the full field set, so there are no partial updates.
type UpdateUserDTO struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ImageURL  *string `json:"image_url,omitempty"`
}
