package core

import (
	"errors"
	"log"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrNoClipboard  = errors.New("no clipboard available")
	ErrCopyFailed   = errors.New("copy failed")
)

type ErrorId int

const (
	ErrInvalidRangeId ErrorId = iota
	ErrNoClipboardId
	ErrCopyFailedId
)

type Error struct {
	id  ErrorId
	err error
}

func (e *Error) ID() ErrorId {
	return e.id
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
