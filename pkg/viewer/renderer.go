package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/qrstl/pkg/geometry"
	"github.com/philipparndt/qrstl/pkg/scene"
)

// Wireframe colors by material, so the raised modules stay
// distinguishable from the base plate
var (
	moduleColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	plateColor  = color.RGBA{R: 96, G: 140, B: 205, A: 255}
)

// boxEdgeIndices pairs the corners of a box that share an edge, by the
// bit scheme of geometry.Box.Corners
var boxEdgeIndices = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // edges along x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // edges along y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // edges along z
}

// SceneViewer renders the box wireframes of a scene and lets the user
// orbit and zoom with the pointer
type SceneViewer struct {
	widget.BaseWidget
	scene     *scene.Scene
	camera    *Camera
	lines     []*canvas.Line
	dragStart *fyne.Position
	width     float64
	height    float64
}

// NewSceneViewer creates a viewer for the given scene
func NewSceneViewer(sc *scene.Scene) *SceneViewer {
	v := &SceneViewer{
		scene: sc,
		lines: make([]*canvas.Line, 0),
	}
	v.camera = NewCamera(sceneBounds(sc))
	v.ExtendBaseWidget(v)
	return v
}

// sceneBounds falls back to a unit box around the origin while the
// scene is still empty
func sceneBounds(sc *scene.Scene) geometry.BoundingBox {
	if bounds, ok := sc.Bounds(); ok {
		return bounds
	}
	bounds := geometry.NewBoundingBox()
	bounds.Extend(geometry.NewVector3(-50, -50, -5))
	bounds.Extend(geometry.NewVector3(50, 50, 5))
	return bounds
}

// ReloadScene refits the camera to the current scene content and
// redraws. Call it after the scene was replaced.
func (v *SceneViewer) ReloadScene() {
	v.camera.Refit(sceneBounds(v.scene))
	v.Render(v.width, v.height)
}

// CreateRenderer creates the fyne renderer for the widget
func (v *SceneViewer) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{
		viewer:  v,
		objects: []fyne.CanvasObject{},
	}
}

// Render projects the wireframe of every box onto the canvas
func (v *SceneViewer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height

	boxes := v.scene.Current()
	v.lines = make([]*canvas.Line, 0, 12*len(boxes))

	for _, box := range boxes {
		lineColor := moduleColor
		if box.Material == geometry.MaterialBasePlate {
			lineColor = plateColor
		}

		corners := box.Corners()
		for _, edge := range boxEdgeIndices {
			x1, y1, _ := v.camera.Project(corners[edge[0]], width, height)
			x2, y2, _ := v.camera.Project(corners[edge[1]], width, height)

			line := canvas.NewLine(lineColor)
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}
	}

	v.Refresh()
}

// Dragged orbits the camera
func (v *SceneViewer) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
}

// DragEnd finishes an orbit gesture
func (v *SceneViewer) DragEnd() {
	v.dragStart = nil
}

// Scrolled zooms the camera
func (v *SceneViewer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	v.camera.Zoom(delta)
	v.Render(v.width, v.height)
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	viewer  *SceneViewer
	objects []fyne.CanvasObject
}

func (r *sceneWidgetRenderer) Layout(size fyne.Size) {
	r.viewer.Render(float64(size.Width), float64(size.Height))
}

func (r *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sceneWidgetRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, len(r.viewer.lines))
	for _, line := range r.viewer.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.viewer)
}

func (r *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sceneWidgetRenderer) Destroy() {}
