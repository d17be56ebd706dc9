package screens

import (
	"context"
	"errors"
	"fmt"

	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/internal/tui/design"
	"gitrack/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const subsystem = "Screens"

// base carries what every screen has in common: identity, the installed
// events, its size and the bookkeeping for in-flight loads.
type base struct {
	id     string
	kind   nav.Kind
	title  string
	params nav.Params
	data   github.Service
	events nav.Events

	width, height int

	spinner spinner.Model
	loading int
	err     error
	notice  string
}

func newBase(kind nav.Kind, title string, params nav.Params, data github.Service) base {
	return base{
		id:      uuid.NewString(),
		kind:    kind,
		title:   title,
		params:  params,
		data:    data,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(design.KeyStyle)),
	}
}

func (b *base) ID() string                  { return b.id }
func (b *base) Kind() nav.Kind              { return b.kind }
func (b *base) Title() string               { return b.title }
func (b *base) SetEvents(events nav.Events) { b.events = events }

func (b *base) SetSize(width, height int) {
	b.width, b.height = width, height
}

// load starts a fetch on behalf of the owning coordinator. The result comes
// back as a nav.LoadedMsg tagged with the owner's token. Nothing is started
// once the owner is gone.
func (b *base) load(kind github.ResourceKind, q github.Query) tea.Cmd {
	owner := b.params.Owner
	if !owner.Alive() {
		logging.Debug(subsystem, "Skipping %s load for finished %s screen", kind, b.kind)
		return nil
	}
	var tick tea.Cmd
	if b.loading == 0 {
		tick = b.spinner.Tick
	}
	b.loading++
	b.err = nil

	id, data := b.id, b.data
	fetch := func() tea.Msg {
		done := make(chan nav.LoadedMsg, 1)
		data.Fetch(context.Background(), kind, q, func(value any, err error) {
			done <- nav.LoadedMsg{ScreenID: id, Owner: owner, Resource: string(kind), Value: value, Err: err}
		})
		return <-done
	}
	return tea.Batch(tick, fetch)
}

// accept reports whether msg belongs to this screen and settles the load
// bookkeeping for it.
func (b *base) accept(msg nav.LoadedMsg) bool {
	if msg.ScreenID != b.id {
		return false
	}
	if b.loading > 0 {
		b.loading--
	}
	if msg.Err != nil {
		b.err = msg.Err
		logging.Warn(subsystem, "Loading %s for %s failed: %v", msg.Resource, b.kind, msg.Err)
	}
	return true
}

// tick keeps the spinner running while something is loading.
func (b *base) tick(msg tea.Msg) tea.Cmd {
	t, ok := msg.(spinner.TickMsg)
	if !ok || b.loading == 0 {
		return nil
	}
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(t)
	return cmd
}

// status renders the loading, error or notice line, if any.
func (b *base) status() string {
	switch {
	case b.loading > 0:
		return b.spinner.View() + design.DimStyle.Render(" Loading…")
	case b.err != nil:
		return design.TextErrorStyle.Render(describeError(b.err))
	case b.notice != "":
		return design.TextSuccessStyle.Render(b.notice)
	default:
		return ""
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, github.ErrUnauthorized):
		return "The token was rejected. Sign in again with a valid token."
	case errors.Is(err, github.ErrNotFound):
		return "Not found. It may have been deleted or you lack access."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// valueAs extracts a typed value from a load result.
func valueAs[T any](msg nav.LoadedMsg) (T, bool) {
	v, ok := msg.Value.(T)
	return v, ok
}
