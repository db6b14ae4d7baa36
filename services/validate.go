package services

import "github.com/go-playground/validator/v10"

// validate checks service-level invariants before any mutation happens;
// controllers additionally rely on gin binding for request shape.
var validate = validator.New()
