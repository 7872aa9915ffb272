package oauthmodel

import "errors"

var ErrMalformedBody = errors.New("malformed request body")
