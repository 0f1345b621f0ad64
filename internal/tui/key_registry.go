package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler applies an action to the model.
type KeyHandler func(m Model) (Model, tea.Cmd)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Enabled  func(m Model) bool // nil means always enabled
	Priority int
}

func (b KeyBinding) enabledFor(m Model) bool {
	return b.Enabled == nil || b.Enabled(m)
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the first enabled binding matching msg.
func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !key.Matches(msg, b.Binding) || !b.enabledFor(m) {
			continue
		}
		next, cmd := b.Handler(m)
		return next, cmd, true
	}
	return m, nil, false
}

// HelpBindings returns the bindings with their enabled flag set for m, in
// priority order, for the help footer. Disabled entries are hidden by
// the help view.
func (r *HandlerRegistry) HelpBindings(m Model) []key.Binding {
	seen := make(map[string]bool)
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		h := b.Binding.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		kb := b.Binding
		kb.SetEnabled(b.enabledFor(m))
		out = append(out, kb)
	}
	return out
}
