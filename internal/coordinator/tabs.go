package coordinator

import (
	"fmt"

	"gitrack/internal/nav"
	"gitrack/pkg/logging"
)

// TabSpec describes one tab of the main flow.
type TabSpec struct {
	Name string
	Kind nav.Kind
}

// DefaultTabs is the tab set of the main flow.
var DefaultTabs = []TabSpec{
	{Name: "Issues", Kind: nav.KindIssueList},
	{Name: "Milestones", Kind: nav.KindMilestoneList},
	{Name: "Profile", Kind: nav.KindProfile},
	{Name: "Settings", Kind: nav.KindSettings},
}

// Tabs is the main flow: one Flow per tab, all showing the same repository.
// Signals raised anywhere below a tab are forwarded to emit unchanged.
type Tabs struct {
	node
	env     *env
	specs   []TabSpec
	repo    string
	started bool
	done    bool
	emit    func(Signal)
}

func newTabs(e *env, specs []TabSpec, repo string, emit func(Signal)) *Tabs {
	return &Tabs{
		node:  newNode(),
		env:   e,
		specs: specs,
		repo:  repo,
		emit:  emit,
	}
}

// Repo returns the repository every tab shows.
func (t *Tabs) Repo() string {
	return t.repo
}

// Tabs returns the tab flows in order.
func (t *Tabs) Tabs() []*Flow {
	out := make([]*Flow, 0, len(t.children))
	for _, c := range t.children {
		if f, ok := c.(*Flow); ok {
			out = append(out, f)
		}
	}
	return out
}

// Start builds every tab. If one tab cannot be built the tabs already started
// are torn down again and the error is returned.
func (t *Tabs) Start() error {
	if t.started {
		logging.Warn(subsystem, "Start called twice on main flow")
		return ErrAlreadyStarted
	}
	t.started = true

	for _, spec := range t.specs {
		f := newFlow(t.env, spec.Name, spec.Kind, nav.Params{Repo: t.repo}, t.forward)
		if err := f.Start(); err != nil {
			t.Teardown()
			return fmt.Errorf("starting tab %q: %w", spec.Name, err)
		}
		t.adopt(f)
	}
	t.env.navigator.Select(0)
	logging.Debug(subsystem, "Main flow started with %d tabs for %s", len(t.children), t.repo)
	return nil
}

// Teardown tears down every tab, last tab first.
func (t *Tabs) Teardown() {
	if t.done {
		return
	}
	t.done = true
	t.live.Release()
	for i := len(t.children) - 1; i >= 0; i-- {
		if f, ok := t.children[i].(*Flow); ok {
			f.Teardown()
		}
	}
	t.children = nil
}

func (t *Tabs) forward(sig Signal) {
	if t.done {
		return
	}
	logging.Debug(subsystem, "Main flow forwarding %s", sig)
	if t.emit != nil {
		t.emit(sig)
	}
}
