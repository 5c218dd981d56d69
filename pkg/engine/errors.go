package engine

import "errors"

// ErrInvalidArgument reports a request that references a missing
// collaborator record or carries an unusable field value.
var ErrInvalidArgument = errors.New("engine: invalid argument")
