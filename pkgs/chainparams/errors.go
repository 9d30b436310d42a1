package chainparams

import "errors"

// ErrUnknownNetwork names the case of a byte prefix or extended-key magic
// that matches no registered network. The From* lookups in this package
// report that case with ok == false and do not return this error.
var ErrUnknownNetwork = errors.New("chainparams: unrecognized network prefix")
