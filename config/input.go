package config

// ActionID represents a logical controller action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionLeanLeft
	ActionLeanRight
	ActionFlyUp
	ActionFlyDown
	ActionToggleFly
	ActionReleaseCursor
	ActionCyclePreset
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveForward:   "forward",
	ActionMoveBack:      "back",
	ActionMoveLeft:      "left",
	ActionMoveRight:     "right",
	ActionJump:          "jump",
	ActionCrouch:        "crouch",
	ActionLeanLeft:      "lean_left",
	ActionLeanRight:     "lean_right",
	ActionFlyUp:         "fly_up",
	ActionFlyDown:       "fly_down",
	ActionToggleFly:     "toggle_fly",
	ActionReleaseCursor: "release_cursor",
	ActionCyclePreset:   "cycle_preset",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves the name used in config files.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// InputBinding lists the key names bound to an action.
// Key names are resolved by each front-end.
type InputBinding struct {
	Keys []string `yaml:"keys"`
}

// InputConfig holds all input mappings and look tuning
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"-"`

	// Radians per pointer unit on each axis
	SensitivityX float32 `yaml:"sensitivity_x"`
	SensitivityY float32 `yaml:"sensitivity_y"`

	// Margin kept from straight up and straight down
	PitchEpsilon float32 `yaml:"pitch_epsilon"`

	// Modifier change per scroll notch
	ScrollStep float32 `yaml:"scroll_step"`

	// Radians per tick for keyboard look in the terminal front-end
	KeyLookStep float32 `yaml:"key_look_step"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		SensitivityX: 0.003,
		SensitivityY: 0.002,
		PitchEpsilon: 0.001,
		ScrollStep:   0.1,
		KeyLookStep:  0.05,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward:   {Keys: []string{"W", "ArrowUp"}},
			ActionMoveBack:      {Keys: []string{"S", "ArrowDown"}},
			ActionMoveLeft:      {Keys: []string{"A", "ArrowLeft"}},
			ActionMoveRight:     {Keys: []string{"D", "ArrowRight"}},
			ActionJump:          {Keys: []string{"Space"}},
			ActionCrouch:        {Keys: []string{"C", "ControlLeft"}},
			ActionLeanLeft:      {Keys: []string{"Q"}},
			ActionLeanRight:     {Keys: []string{"E"}},
			ActionFlyUp:         {Keys: []string{"Space"}},
			ActionFlyDown:       {Keys: []string{"ShiftLeft", "Z"}},
			ActionToggleFly:     {Keys: []string{"F"}},
			ActionReleaseCursor: {Keys: []string{"Escape"}},
			ActionCyclePreset:   {Keys: []string{"Tab"}},
		},
	}
}
