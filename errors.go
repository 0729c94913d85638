package charconv

import "errors"

// ErrUnknownCharset is returned by Init and by any constructor taking a
// charset name when that name is not registered (spec.md §7.3).
var ErrUnknownCharset = errors.New("charconv: unknown charset")
