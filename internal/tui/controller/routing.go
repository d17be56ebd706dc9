package controller

import (
	"gitrack/internal/nav"
	"gitrack/internal/tui/model"
	"gitrack/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// routeLoaded hands a data result to the screen that requested it. Results
// whose owner has finished, or whose screen is no longer mounted, are
// dropped without touching anything.
func routeLoaded(m *model.Model, msg nav.LoadedMsg) tea.Cmd {
	if !msg.Owner.Alive() {
		logging.Debug(controllerSubsystem, "Dropping %s result: owner finished", msg.Resource)
		return nil
	}
	screen, ok := m.Navigator.Find(msg.ScreenID)
	if !ok {
		logging.Debug(controllerSubsystem, "Dropping %s result: screen no longer mounted", msg.Resource)
		return nil
	}
	return screen.Update(msg)
}

// topScreen returns the visible screen of the active context.
func topScreen(m *model.Model) (nav.Screen, bool) {
	stack := m.Navigator.Active()
	if stack == nil {
		return nil, false
	}
	return stack.Top()
}

func updateTop(m *model.Model, msg tea.Msg) tea.Cmd {
	screen, ok := topScreen(m)
	if !ok {
		return nil
	}
	return screen.Update(msg)
}

// broadcast sends msg to every mounted screen. Screens may change the tree
// while handling it, so the set is captured first and re-checked per screen.
func broadcast(m *model.Model, msg tea.Msg) tea.Cmd {
	var screens []nav.Screen
	m.Navigator.Each(func(s nav.Screen) { screens = append(screens, s) })

	var cmds []tea.Cmd
	for _, s := range screens {
		if _, mounted := m.Navigator.Find(s.ID()); !mounted {
			continue
		}
		cmds = append(cmds, s.Update(msg))
	}
	return tea.Batch(cmds...)
}

// capturing reports whether the visible screen owns key input right now.
func capturing(screen nav.Screen) bool {
	c, ok := screen.(nav.InputCapturer)
	return ok && c.Capturing()
}
