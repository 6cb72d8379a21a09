package core

import "log"

type Signal any

// ChangeSignal is sent after every mutation of the buffer or selection.
// It carries no payload: consumers re-render and read what they need.
type ChangeSignal struct{}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type CopySignal struct {
	content string
}

func (c CopySignal) Value() string {
	return c.content
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default:
		log.Printf("Channel is full, dropping %T", signal)
	}
}
