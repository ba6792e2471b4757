package username

import "errors"

var ErrExhausted = errors.New("no free username found")
