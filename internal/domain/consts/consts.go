package consts

import "time"

const DBCtxTimeout = 3 * time.Second

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)
