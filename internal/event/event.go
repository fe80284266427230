// Package event defines the messages that flow through the event bus and the
// process-wide emitter used to publish them.
package event

// AppEvent is a message consumed exactly once by the main loop.
type AppEvent interface {
	appEvent()
}

// Exit requests orderly termination of the main loop.
type Exit struct{}

// KeyInput carries one normalised keyboard event.
type KeyInput struct {
	Key Key
}

// Resize reports new terminal dimensions in cells.
type Resize struct {
	Cols int
	Rows int
}

// ActionEvent wraps an application action for the reducer.
type ActionEvent struct {
	Action Action
}

// RenderTick asks the render scheduler to draw if the state is dirty.
type RenderTick struct{}

// MarkDirty flags the state as needing a redraw without touching it. Producers
// outside the reducer use it when something they own becomes visible, for
// example a cover image finishing its load.
type MarkDirty struct{}

func (Exit) appEvent()        {}
func (KeyInput) appEvent()    {}
func (Resize) appEvent()      {}
func (ActionEvent) appEvent() {}
func (RenderTick) appEvent()  {}
func (MarkDirty) appEvent()   {}
