package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Stage is the coarse mode of the game.
type Stage int

const (
	StageMenu Stage = iota
	StagePlay
	StageGameOver
)

func (s Stage) String() string {
	switch s {
	case StageMenu:
		return "menu"
	case StagePlay:
		return "play"
	case StageGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ButtonID identifies a clickable menu button.
type ButtonID int

const (
	ButtonStart ButtonID = iota
	ButtonRestart
	ButtonSound
	ButtonExit
)

// Button is a clickable area in field coordinates.
type Button struct {
	ID    ButtonID
	Label string
	Box   core.Box
}

const (
	buttonW = 200
	buttonH = 50
)

// Buttons returns the buttons shown in the current stage. Play has none.
func (s *Session) Buttons() []Button {
	cx := s.cfg.Field.Width / 2
	cy := s.cfg.Field.Height / 2

	switch s.stage {
	case StageMenu:
		sound := "Sound: On"
		if s.audio.Muted() {
			sound = "Sound: Off"
		}
		return []Button{
			{ID: ButtonStart, Label: "Start", Box: core.NewBox(cx, cy, buttonW, buttonH)},
			{ID: ButtonSound, Label: sound, Box: core.NewBox(cx, cy+100, buttonW, buttonH)},
			{ID: ButtonExit, Label: "Exit", Box: core.NewBox(cx, cy+200, buttonW, buttonH)},
		}
	case StageGameOver:
		return []Button{
			{ID: ButtonRestart, Label: "Restart", Box: core.NewBox(cx, cy, buttonW, buttonH)},
		}
	}
	return nil
}

// Click hit-tests p against the current stage's buttons and runs the
// action of the one it lands on.
func (s *Session) Click(p core.Vec2) {
	for _, b := range s.Buttons() {
		if !b.Box.Contains(p) {
			continue
		}
		s.play(core.SoundMenuSelect)
		s.press(b.ID)
		return
	}
}

func (s *Session) press(id ButtonID) {
	switch id {
	case ButtonStart:
		s.Start()
	case ButtonRestart:
		s.Restart()
	case ButtonSound:
		s.ToggleMute()
	case ButtonExit:
		s.Exit()
	}
}

// Action routes a discrete action according to the current stage.
// Held direction actions are ignored here.
func (s *Session) Action(a core.Action) {
	switch s.stage {
	case StageMenu:
		switch a {
		case core.ActionConfirm:
			s.Start()
		case core.ActionMute:
			s.ToggleMute()
		case core.ActionQuit:
			s.Exit()
		}
	case StagePlay:
		if a == core.ActionBack {
			s.Cancel()
		}
	case StageGameOver:
		if a == core.ActionRestart || a == core.ActionConfirm {
			s.Restart()
		}
	}
}

// discreteActions are handled once per frame, in this order.
var discreteActions = []core.Action{
	core.ActionBack,
	core.ActionConfirm,
	core.ActionRestart,
	core.ActionMute,
	core.ActionQuit,
}

func (s *Session) handleInput(in core.InputFrame) {
	for _, a := range discreteActions {
		if in.Has(a) {
			s.Action(a)
		}
	}
	if in.Click != nil {
		s.Click(*in.Click)
	}
}

// Start begins a new game from the menu.
func (s *Session) Start() {
	if s.stage != StageMenu {
		return
	}
	s.newGame()
}

// Restart begins a new game from the game over screen.
func (s *Session) Restart() {
	if s.stage != StageGameOver {
		return
	}
	s.newGame()
}

// Cancel abandons the running game and returns to the menu.
func (s *Session) Cancel() {
	if s.stage != StagePlay {
		return
	}
	s.cancelAll()
	s.canMove = false
	s.setStage(StageMenu)
}

// ToggleMute flips the audio mute flag. Unmuting resumes the soundtrack.
func (s *Session) ToggleMute() {
	if !s.audio.ToggleMute() {
		s.audio.PlayMusic()
	}
}

// Exit requests process termination. Only the menu offers it.
func (s *Session) Exit() {
	if s.stage != StageMenu {
		return
	}
	s.quit = true
	s.log.Debug("exit requested")
}

// newGame replaces the world and reschedules every periodic callback.
func (s *Session) newGame() {
	s.cancelAll()
	s.world = NewWorld(s.cfg)
	s.canMove = true
	s.dead = false
	s.setStage(StagePlay)
	s.schedulePeriodic()
}

func (s *Session) enterGameOver() {
	s.gameOver = 0
	if s.stage != StagePlay {
		return
	}
	s.play(core.SoundLose)
	s.setStage(StageGameOver)
}

func (s *Session) setStage(next Stage) {
	if next == s.stage {
		return
	}
	s.log.Debug("stage", "from", s.stage, "to", next)
	s.stage = next
}
