package mapping

import "go.trai.ch/zerr"

// ErrUnknownKind is returned when a constraint type token is not one of the known kinds.
var ErrUnknownKind = zerr.New("unknown constraint type")
