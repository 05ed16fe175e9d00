package user

import "github.com/amirasaad/market/pkg/dto"

// Profile is the caller's account with the items they own.
type Profile struct {
	User  *dto.UserRead   `json:"user"`
	Items []*dto.ItemRead `json:"items"`
}
