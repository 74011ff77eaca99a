package main

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gardenpuzzle/editor"
	"golang.org/x/image/font/gofont/goregular"
)

const leftPanelWidth = 240

// UIHandlers are the callbacks the side panel invokes.
type UIHandlers struct {
	OnTool         func(idx int)
	OnColor        func(hex string)
	OnResize       func(dCols, dRows int)
	OnRotateLast   func()
	OnAddChar      func()
	OnRemoveChar   func()
	OnRotateRoster func(idx int)
	OnExport       func()
	OnToggleFormat func()
}

// Panel is the live handle on the side panel widgets.
type Panel struct {
	Tools     *ToolBar
	Colors    *ColorBar
	Roster    *RosterBar
	formatBtn *widget.Button
}

func (p *Panel) SetFormat(name string) {
	if p == nil || p.formatBtn == nil {
		return
	}
	if t := p.formatBtn.Text(); t != nil {
		t.Label = fmt.Sprintf("Format: %s", name)
	}
}

func loadFontFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func BuildEditorUI(fontFace text.Face, tools []editor.Tool, palette []string, initialTool int, h UIHandlers) (*ebitenui.UI, *Panel) {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			),
		),
	)

	panel := &Panel{}
	panel.Tools = buildToolBar(leftPanel, theme, &fontFace, tools, h.OnTool, initialTool)
	panel.Colors = buildColorBar(leftPanel, &fontFace, palette, h.OnColor)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, &fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(40, 26),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}
	resize := func(dc, dr int) func() {
		return func() {
			if h.OnResize != nil {
				h.OnResize(dc, dr)
			}
		}
	}

	leftPanel.AddChild(sectionLabel(&fontFace, "Size"))
	sizeRow := row(4)
	sizeRow.AddChild(button("W-", resize(-1, 0)))
	sizeRow.AddChild(button("W+", resize(1, 0)))
	sizeRow.AddChild(button("H-", resize(0, -1)))
	sizeRow.AddChild(button("H+", resize(0, 1)))
	leftPanel.AddChild(sizeRow)

	leftPanel.AddChild(sectionLabel(&fontFace, "Characters"))
	rosterRow := row(4)
	rosterRow.AddChild(button("Add", h.OnAddChar))
	rosterRow.AddChild(button("Remove", h.OnRemoveChar))
	leftPanel.AddChild(rosterRow)
	rosterGrid := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(6),
				widget.GridLayoutOpts.Spacing(4, 4),
			),
		),
	)
	leftPanel.AddChild(rosterGrid)
	panel.Roster = &RosterBar{container: rosterGrid, theme: theme, face: &fontFace, onRotate: h.OnRotateRoster}

	leftPanel.AddChild(sectionLabel(&fontFace, "Actions"))
	actionRow := row(4)
	actionRow.AddChild(button("Rotate", h.OnRotateLast))
	actionRow.AddChild(button("Export", h.OnExport))
	leftPanel.AddChild(actionRow)
	panel.formatBtn = button("Format: data", h.OnToggleFormat)
	leftPanel.AddChild(panel.formatBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel)
	ui.Container = root

	return ui, panel
}
