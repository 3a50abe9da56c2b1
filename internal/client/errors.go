package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")

	ErrServicesNotInitialized = errors.New("client services are not initialized")
)
