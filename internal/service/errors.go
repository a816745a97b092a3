package service

import "errors"

// ErrInvalidCredentials covers every login failure (unknown account,
// deactivated account, wrong password) so responses cannot be used to
// probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAlreadySubscribed is returned when an active subscriber subscribes
// again with the same email.
var ErrAlreadySubscribed = errors.New("already subscribed")
