package tui

import "charm.land/bubbles/v2/key"

// keyMap represents key map data used by this package.
type keyMap struct {
	quit          key.Binding
	reload        key.Binding
	toggleHelp    key.Binding
	moveUp        key.Binding
	moveDown      key.Binding
	nextPane      key.Binding
	prevPane      key.Binding
	addTask       key.Binding
	editTask      key.Binding
	deleteTask    key.Binding
	toggleDone    key.Binding
	newProject    key.Binding
	renameProject key.Binding
	deleteProject key.Binding
	filter        key.Binding
	settings      key.Binding
	yank          key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		reload:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		toggleHelp:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		moveUp:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		moveDown:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		nextPane:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		prevPane:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),
		addTask:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		editTask:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit task")),
		deleteTask:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		toggleDone:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle complete")),
		newProject:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new project")),
		renameProject: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "rename project")),
		deleteProject: key.NewBinding(key.WithKeys("D", "shift+d"), key.WithHelp("D", "delete project")),
		filter:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		settings:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		yank:          key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank task")),
	}
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addTask, k.editTask, k.toggleDone, k.deleteTask, k.filter, k.settings, k.toggleHelp, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.addTask, k.editTask, k.deleteTask, k.toggleDone, k.yank, k.filter},
		{k.newProject, k.renameProject, k.deleteProject, k.settings},
		{k.moveUp, k.moveDown, k.nextPane, k.prevPane, k.reload, k.toggleHelp, k.quit},
	}
}
