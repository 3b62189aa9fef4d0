package member

import "errors"

var ErrMemberNotFound = errors.New("member not found")

var ErrMemberBlocked = errors.New("member is blocked")

var ErrInvalidCredentials = errors.New("invalid member number or pin")
