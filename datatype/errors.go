package datatype

import "errors"

// ErrUnknownTag is returned whenever a Tag outside the 11-entry catalogue is
// passed to Length, Plan, or Convert.
var ErrUnknownTag = errors.New("datatype: unknown tag")
