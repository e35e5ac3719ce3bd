package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/megaman/input"
	"golang.org/x/image/font/basicfont"
)

const joystickButtonSize = 64

// NewJoystickUI builds the on-screen d-pad in the bottom-left corner and the
// A and B buttons in the bottom-right. Presses are pushed to rec as
// joystick samples. The returned hit test reports screen points covered by
// a button so the pointer is not read as a tap there.
func NewJoystickUI(rec *input.Recognizer) (*ebitenui.UI, func(x, y int) bool) {
	padImg := imageui.NewNineSliceColor(color.NRGBA{A: 0})
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 160}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 180}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 200}),
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	textColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	var buttons []*widget.Button
	newButton := func(label string, s input.Sample) *widget.Button {
		b := widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &face, textColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(joystickButtonSize, joystickButtonSize)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				rec.Push(s)
			}),
		)
		buttons = append(buttons, b)
		return b
	}
	spacer := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(joystickButtonSize, joystickButtonSize)),
		)
	}
	dpad := func(d input.Direction, label string) *widget.Button {
		return newButton(label, input.Sample{Kind: input.SampleJoystickButton, Direction: d})
	}

	pad := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(padImg),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(4, 4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	pad.AddChild(spacer())
	pad.AddChild(dpad(input.DirectionUp, "^"))
	pad.AddChild(spacer())
	pad.AddChild(dpad(input.DirectionLeft, "<"))
	pad.AddChild(spacer())
	pad.AddChild(dpad(input.DirectionRight, ">"))
	pad.AddChild(spacer())
	pad.AddChild(dpad(input.DirectionDown, "v"))
	pad.AddChild(spacer())

	actions := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(padImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	actions.AddChild(newButton("B", input.Sample{Kind: input.SampleButtonB}))
	actions.AddChild(newButton("A", input.Sample{Kind: input.SampleButtonA}))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 24, Right: 24}),
		)),
	)
	root.AddChild(pad)
	root.AddChild(actions)

	hit := func(x, y int) bool {
		p := image.Pt(x, y)
		for _, b := range buttons {
			if p.In(b.GetWidget().Rect) {
				return true
			}
		}
		return false
	}
	return &ebitenui.UI{Container: root}, hit
}
