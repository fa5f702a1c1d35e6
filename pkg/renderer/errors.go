package renderer

import "github.com/pkg/errors"

var (
	ErrNoCamera      = errors.New("renderer: no camera defined")
	ErrNoWorld       = errors.New("renderer: no world defined")
	ErrInvalidConfig = errors.New("renderer: invalid sampling configuration")
	ErrInterrupted   = errors.New("renderer: interrupted while rendering")
)
