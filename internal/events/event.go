// Package events carries one-shot notifications from the view-model to the
// rendering layer.
//
// Unlike state.Store, a Bus keeps no value: an event reaches the subscribers
// that are active when it is published and is then gone. A subscriber that
// arrives later never sees it.
package events

// UserEvent is a transient notification for the user. New kinds can be added
// by declaring another type with a Message method; consumers should ignore
// kinds they do not recognise.
type UserEvent interface {
	Message() string
}

// ToastMessage asks the renderer to show Text briefly.
type ToastMessage struct {
	Text string
}

// Message implements UserEvent.
func (t ToastMessage) Message() string {
	return t.Text
}

// Toast is shorthand for a ToastMessage event.
func Toast(text string) UserEvent {
	return ToastMessage{Text: text}
}
