package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

var (
	panelBackground = color.RGBA{40, 40, 40, 255}
	labelColor      = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
)

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:    solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed:  solidNineSlice(color.RGBA{120, 160, 220, 255}),
				Disabled: solidNineSlice(color.RGBA{90, 90, 90, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Hover:    color.Black,
				Pressed:  color.RGBA{0, 0, 128, 255},
				Disabled: color.Gray{Y: 128},
			},
		},
	}
}

// swatchImage is the button image of a palette color. The pressed state gets
// a white frame so the selected color stands out.
func swatchImage(c color.Color) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     solidNineSlice(c),
		Hover:    solidNineSlice(c),
		Pressed:  image.NewBorderedNineSliceColor(c, color.White, 3),
		Disabled: solidNineSlice(color.RGBA{60, 60, 60, 255}),
	}
}

func sectionLabel(fontFace *text.Face, title string) *widget.Label {
	return widget.NewLabel(widget.LabelOpts.Text(title, fontFace, labelColor))
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(spacing),
			),
		),
	)
}
