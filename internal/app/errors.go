package app

import "errors"

// ErrEmptySecret is returned by the add prompt when nothing was entered.
var ErrEmptySecret = errors.New("secret is empty")
