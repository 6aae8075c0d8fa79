package custom_errors

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrUserValidation = errors.New("user validation failed")
	ErrPostValidation = errors.New("post validation failed")
	ErrDatabaseQuery  = errors.New("database query error")
	ErrDatabaseScan   = errors.New("database scan error")
	ErrNoUpdateRows   = errors.New("no fields to update")
)
