package models

import "errors"

// Identity describes the logged-in user as the client knows it.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate checks the fields a restored identity must carry. A persisted blob
// missing any of them is treated as corrupt and the session is discarded.
func (i *Identity) Validate() error {
	if i == nil {
		return errors.New("identity is nil")
	}
	if i.ID == 0 {
		return errors.New("identity has no id")
	}
	if i.Email == "" {
		return errors.New("identity has no email")
	}
	if !i.Role.Valid() {
		return errors.New("identity has no valid role")
	}
	return nil
}
