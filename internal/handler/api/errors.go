package api

import "errors"

var (
	errBothCoordinates = errors.New("lat and lng must be provided together")
	errBadCoordinates  = errors.New("lat and lng must be valid coordinates")
	errNoQueuePosition = errors.New("no queue position for the current user")
	errNotLoggedIn     = errors.New("no active session")
)
