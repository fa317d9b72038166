package storerrros

import "errors"

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrFeedbackExists   = errors.New("feedback already exists")
)
