// internal/state/menu_state.go
package state

import (
	"fmt"
	"gym-guardian/internal/audio"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/ui"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MenuState — выбор карты перед началом партии.
type MenuState struct {
	sm       *StateMachine
	seed     int64
	cues     *audio.SoundCues
	face     font.Face
	layouts  []defs.MapLayout
	buttons  []*ui.Button
	selected int
}

func NewMenuState(sm *StateMachine, seed int64, cues *audio.SoundCues) *MenuState {
	m := &MenuState{
		sm:      sm,
		seed:    seed,
		cues:    cues,
		face:    basicfont.Face7x13,
		layouts: defs.Layouts(),
	}
	x0 := config.ScreenWidth/2 - 200
	y := 220
	for i, layout := range m.layouts {
		b := ui.NewButton(image.Rect(x0, y, x0+400, y+50), fmt.Sprintf("%d. %s", i+1, layout.Name))
		b.Subtext = layout.Description
		m.buttons = append(m.buttons, b)
		y += 64
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if i < len(m.layouts) && inpututil.IsKeyJustPressed(key) {
			m.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && m.selected > 0 {
		m.selected--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && m.selected < len(m.layouts)-1 {
		m.selected++
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				m.start(i)
				return
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start(m.selected)
	}
}

func (m *MenuState) start(i int) {
	m.sm.SetState(NewGameState(m.sm, m.layouts[i], m.seed, m.cues))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "GYM GUARDIAN - choose your gym floor"
	bounds := text.BoundString(m.face, title)
	text.Draw(screen, title, m.face, (config.ScreenWidth-bounds.Dx())/2, 180, config.GoldColor)

	for i, b := range m.buttons {
		b.Active = i == m.selected
		bg := config.ButtonColor
		border := config.PanelColor
		if b.Active {
			bg = config.ButtonActive
			border = config.SelectionColor
		}
		b.Draw(screen, m.face, bg, border)
	}

	hint := "1-3 or arrows to choose, ENTER to start"
	bounds = text.BoundString(m.face, hint)
	text.Draw(screen, hint, m.face, (config.ScreenWidth-bounds.Dx())/2, 440, config.TextDimColor)
}

func (m *MenuState) Exit() {}
