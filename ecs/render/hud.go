package render

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const GameOverText = "game over"

// HUD shows the score label and, once the session ends, the game over
// banner.
type HUD struct {
	ui       *ebitenui.UI
	score    *widget.Text
	gameOver *widget.Text
}

// NewHUD places the score label at (x, y) in screen space.
func NewHUD(x, y float64) *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red := color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}

	score := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)

	scorePanel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: int(y), Left: int(x)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	scorePanel.AddChild(score)

	gameOver := widget.NewText(
		widget.TextOpts.Text("", &face, red),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(scorePanel)
	root.AddChild(gameOver)

	return &HUD{
		ui:       &ebitenui.UI{Container: root},
		score:    score,
		gameOver: gameOver,
	}
}

// Update copies the score label and session state into the widgets.
func (h *HUD) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}
	if e, ok := ecs.First(w, component.LabelComponent.Kind()); ok {
		if label, ok := ecs.Get(w, e, component.LabelComponent.Kind()); ok {
			h.score.Label = label.Text
		}
	}
	h.gameOver.Label = ""
	if e, ok := ecs.First(w, component.SessionComponent.Kind()); ok {
		if s, ok := ecs.Get(w, e, component.SessionComponent.Kind()); ok && s.Over() {
			h.gameOver.Label = GameOverText
		}
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || screen == nil {
		return
	}
	h.ui.Draw(screen)
}
