package term

import (
	"strings"
	"unicode"

	"github.com/automoto/goldenfps/config"
	"github.com/gdamore/tcell/v2"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:     "ArrowUp",
	tcell.KeyDown:   "ArrowDown",
	tcell.KeyLeft:   "ArrowLeft",
	tcell.KeyRight:  "ArrowRight",
	tcell.KeyTab:    "Tab",
	tcell.KeyEscape: "Escape",
	tcell.KeyEnter:  "Enter",
}

// KeyName returns the binding name of a key event, or "" when the key has
// no name. Letters are named in upper case whatever the shift state.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() != tcell.KeyRune {
		return keyNames[ev.Key()]
	}
	r := ev.Rune()
	switch {
	case r == ' ':
		return "Space"
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return strings.ToUpper(string(r))
	}
	return ""
}

// Bindings maps key names to the actions bound to them.
type Bindings map[string][]config.ActionID

// NewBindings inverts the configured action bindings.
func NewBindings(cfg *config.InputConfig) Bindings {
	b := make(Bindings)
	for id := config.ActionID(0); id < config.ActionCount; id++ {
		for _, key := range cfg.Bindings[id].Keys {
			b[key] = append(b[key], id)
		}
	}
	return b
}
