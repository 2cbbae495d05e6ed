package project

import "errors"

// ErrPathResolution is returned by path accessors when a default path is
// requested but the location of the running executable could not be
// determined. Callers recover by setting explicit overrides.
var ErrPathResolution = errors.New("cannot resolve executable location")
