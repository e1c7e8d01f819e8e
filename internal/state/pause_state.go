// internal/state/pause_state.go
package state

import (
	"gym-guardian/internal/config"
	"gym-guardian/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует поверх предыдущего состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          interfaces.GameContext
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.GameContext, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
		font:          face,
	}
}

func (s *PauseState) Enter() {
	if !s.game.IsPaused() {
		s.game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	pauseText := "PAUSED - press P to resume"
	bounds := text.BoundString(s.font, pauseText)
	text.Draw(screen, pauseText, s.font, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

// Exit снимает игру с паузы при возврате в предыдущее состояние.
func (s *PauseState) Exit() {
	if s.game.IsPaused() {
		s.game.TogglePause()
	}
}
