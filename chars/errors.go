package chars

import "errors"

var (
	ErrLengthOutOfRange = errors.New("chars: explicit length out of range")
	ErrNoTerminator     = errors.New("chars: terminator not found")
	ErrIndexOutOfRange  = errors.New("chars: index out of range")
)
