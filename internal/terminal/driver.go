// Package terminal runs the Bubble Tea program that owns the terminal. The
// program is a thin bridge: it forwards key and resize messages to the event
// bus and displays whatever frame the render scheduler last produced.
package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/mineral/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const inputBuffer = 128

type frameMsg string

// Driver is the platform input stream and frame sink.
type Driver struct {
	program *tea.Program
	inputs  chan tea.Msg
}

// New prepares a driver. Extra options are appended after the defaults
// (alternate screen, no Bubble Tea signal handling, ctx cancellation).
func New(ctx context.Context, opts ...tea.ProgramOption) *Driver {
	inputs := make(chan tea.Msg, inputBuffer)
	base := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithContext(ctx),
	}
	program := tea.NewProgram(&bridge{inputs: inputs}, append(base, opts...)...)
	return &Driver{program: program, inputs: inputs}
}

// Run blocks until the program exits. Cancellation is not an error.
func (d *Driver) Run() error {
	_, err := d.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}

// Inputs yields raw key and resize messages. Translate converts them.
func (d *Driver) Inputs() <-chan tea.Msg {
	return d.inputs
}

// Draw replaces the displayed frame.
func (d *Driver) Draw(frame string) {
	d.program.Send(frameMsg(frame))
}

// Quit asks the program to restore the terminal and exit.
func (d *Driver) Quit() {
	d.program.Quit()
}

type bridge struct {
	frame  string
	inputs chan<- tea.Msg
}

func (b *bridge) Init() tea.Cmd { return nil }

func (b *bridge) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		b.frame = string(msg)
	case tea.KeyMsg, tea.WindowSizeMsg:
		select {
		case b.inputs <- msg:
		default:
			events.Bus.InputDropped(fmt.Sprintf("%T", msg))
		}
	}
	return b, nil
}

func (b *bridge) View() string {
	return b.frame
}
