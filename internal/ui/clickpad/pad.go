package clickpad

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	padColorIdle     = color.NRGBA{R: 0x2b, G: 0x33, B: 0x40, A: 0xff}
	padColorAllow    = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	padColorProhibit = color.NRGBA{R: 0x8e, G: 0x24, B: 0x24, A: 0xff}
)

// Pad is the tappable click target. Every primary tap is forwarded to the
// onTap callback; the pad itself holds no cycle state beyond its colour.
type Pad struct {
	widget.BaseWidget
	background *canvas.Rectangle
	caption    *canvas.Text
	onTap      func()
}

// NewPad creates a pad that reports taps to onTap.
func NewPad(onTap func()) *Pad {
	pad := &Pad{
		background: canvas.NewRectangle(padColorIdle),
		caption:    canvas.NewText("press Start", color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 0xff}),
		onTap:      onTap,
	}
	pad.caption.Alignment = fyne.TextAlignCenter
	pad.caption.TextStyle = fyne.TextStyle{Bold: true}
	pad.caption.TextSize = 18
	pad.ExtendBaseWidget(pad)
	return pad
}

// Tapped implements fyne.Tappable.
func (pad *Pad) Tapped(*fyne.PointEvent) {
	if pad.onTap != nil {
		pad.onTap()
	}
}

// CreateRenderer implements fyne.Widget.
func (pad *Pad) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(pad.background, container.NewCenter(pad.caption))
	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (pad *Pad) MinSize() fyne.Size {
	return fyne.NewSize(320, 180)
}

// SetMode updates the pad colour and caption for the given display mode.
func (pad *Pad) SetMode(fill color.Color, caption string) {
	pad.background.FillColor = fill
	pad.caption.Text = caption
	pad.background.Refresh()
	pad.caption.Refresh()
}
