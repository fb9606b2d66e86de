// Package repository persists the single saved place. At most one record
// exists at a time; saving overwrites the previous one.
package repository

import "errors"

// ErrNoSavedPlace is returned when no place has been saved yet.
var ErrNoSavedPlace = errors.New("no place has been saved yet")
