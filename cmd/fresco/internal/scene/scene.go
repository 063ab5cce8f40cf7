// Package scene loads declarative scene descriptions from YAML and builds
// render trees of box widgets from them.
package scene

import (
	stderrors "errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fresco/pkg/errors"
	"github.com/go-drift/fresco/pkg/graphics"
	"github.com/go-drift/fresco/pkg/layout"
	"github.com/go-drift/fresco/pkg/render"
	"github.com/go-drift/fresco/pkg/rendering"
	"github.com/go-drift/fresco/pkg/widgets"
)

// supportedMajor is the scene format major version this build understands.
const supportedMajor = "v1"

// Doc is the top-level YAML scene description.
type Doc struct {
	Version   string     `yaml:"version"`
	Canvas    CanvasSpec `yaml:"canvas"`
	Direction string     `yaml:"direction,omitempty"`
	Root      *NodeSpec  `yaml:"root"`
}

// CanvasSpec describes the output surface.
type CanvasSpec struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
}

// NodeSpec describes one box in the scene tree.
type NodeSpec struct {
	Width     float64     `yaml:"width,omitempty"`
	Height    float64     `yaml:"height,omitempty"`
	Fill      string      `yaml:"fill"`
	Alignment string      `yaml:"alignment,omitempty"`
	Weight    float64     `yaml:"weight,omitempty"`
	Children  []*NodeSpec `yaml:"children,omitempty"`
}

// Scene is a loaded, laid-out scene ready to paint.
type Scene struct {
	Root       *render.Node
	Width      int
	Height     int
	Background rendering.Color
}

// Load reads, validates, and builds a scene from a YAML file.
// The returned tree is fully laid out.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sceneErr("scene.Load", err)
	}

	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sceneErr("scene.Load", fmt.Errorf("parsing %s: %w", path, err))
	}
	return Build(&doc)
}

// Build validates a scene document and constructs its render tree.
func Build(doc *Doc) (*Scene, error) {
	if err := checkVersion(doc.Version); err != nil {
		return nil, sceneErr("scene.Build", err)
	}
	if doc.Root == nil {
		return nil, sceneErr("scene.Build", stderrors.New("scene has no root node"))
	}
	if doc.Canvas.Width <= 0 || doc.Canvas.Height <= 0 {
		return nil, sceneErr("scene.Build", fmt.Errorf("invalid canvas size %dx%d", doc.Canvas.Width, doc.Canvas.Height))
	}

	direction := layout.TextDirectionLTR
	switch doc.Direction {
	case "", "ltr":
	case "rtl":
		direction = layout.TextDirectionRTL
	default:
		return nil, sceneErr("scene.Build", fmt.Errorf("unknown text direction %q", doc.Direction))
	}

	background := rendering.ColorWhite
	if doc.Canvas.Background != "" {
		var err error
		background, err = parseColor(doc.Canvas.Background)
		if err != nil {
			return nil, sceneErr("scene.Build", err)
		}
	}

	root, err := buildNode(doc.Root, direction)
	if err != nil {
		return nil, err
	}
	if err := layoutNode(root, doc.Root, graphics.Size{
		Width:  float64(doc.Canvas.Width),
		Height: float64(doc.Canvas.Height),
	}); err != nil {
		return nil, err
	}

	return &Scene{
		Root:       root,
		Width:      doc.Canvas.Width,
		Height:     doc.Canvas.Height,
		Background: background,
	}, nil
}

// Record runs a paint pass over the scene into a display list.
func (s *Scene) Record() (*rendering.DisplayList, error) {
	recorder := &rendering.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{
		Width:  float64(s.Width),
		Height: float64(s.Height),
	})
	canvas.Clear(s.Background)
	if err := render.PaintRoot(s.Root, canvas); err != nil {
		return nil, err
	}
	return recorder.EndRecording(), nil
}

// Rasterize paints the scene and writes it to a PNG file.
func (s *Scene) Rasterize(path string) error {
	list, err := s.Record()
	if err != nil {
		return err
	}
	canvas := rendering.NewRasterCanvas(s.Width, s.Height)
	list.Paint(canvas)
	if err := canvas.SavePNG(path); err != nil {
		return &errors.FrescoError{Op: "scene.Rasterize", Kind: errors.KindRender, Err: err}
	}
	return nil
}

func checkVersion(version string) error {
	if version == "" {
		return stderrors.New("scene is missing a version")
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid scene version %q (expected e.g. %s)", version, supportedMajor)
	}
	if semver.Major(version) != supportedMajor {
		return fmt.Errorf("unsupported scene version %s (this build supports %s)", version, supportedMajor)
	}
	return nil
}

// buildNode constructs the widget tree depth-first.
func buildNode(spec *NodeSpec, direction layout.TextDirection) (*render.Node, error) {
	fill, err := parseColor(spec.Fill)
	if err != nil {
		return nil, sceneErr("scene.buildNode", err)
	}
	align, err := parseAlignment(spec.Alignment)
	if err != nil {
		return nil, sceneErr("scene.buildNode", err)
	}

	children := make([]*render.Node, 0, len(spec.Children))
	for _, childSpec := range spec.Children {
		child, err := buildNode(childSpec, direction)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	box := &widgets.Box{Fill: fill, Alignment: align, Direction: direction}
	return render.NewNode(box, children...), nil
}

// layoutNode resolves sizes depth-first and marks nodes laid out.
//
// Explicit width/height win. Children with a positive weight share the
// parent's width proportionally; their weight is stashed in the parent-data
// slot so the Box can pack them in a row at paint time.
func layoutNode(node *render.Node, spec *NodeSpec, inherited graphics.Size) error {
	size := inherited
	if spec.Width > 0 {
		size.Width = spec.Width
	}
	if spec.Height > 0 {
		size.Height = spec.Height
	}
	if size.IsEmpty() {
		return sceneErr("scene.layoutNode", fmt.Errorf("node has no resolvable size (%g x %g)", size.Width, size.Height))
	}

	guard := node.DataMut()
	guard.SetSize(size)
	guard.SetLaidOut(true)
	guard.Release()

	var totalWeight float64
	for _, childSpec := range spec.Children {
		totalWeight += childSpec.Weight
	}

	for i, childSpec := range spec.Children {
		child := node.ChildAt(i)
		childSize := size
		if childSpec.Weight > 0 {
			childSize.Width = size.Width * childSpec.Weight / totalWeight
			render.SetParentData(render.NewPaintContext(child), widgets.BoxParentData{Weight: childSpec.Weight})
		}
		if err := layoutNode(child, childSpec, childSize); err != nil {
			return err
		}
	}
	return nil
}

var alignments = map[string]layout.AlignmentGeometry{
	"topLeft":      layout.AlignmentTopLeft,
	"topCenter":    layout.AlignmentTopCenter,
	"topRight":     layout.AlignmentTopRight,
	"centerLeft":   layout.AlignmentCenterLeft,
	"center":       layout.AlignmentCenter,
	"centerRight":  layout.AlignmentCenterRight,
	"bottomLeft":   layout.AlignmentBottomLeft,
	"bottomCenter": layout.AlignmentBottomCenter,
	"bottomRight":  layout.AlignmentBottomRight,
	"topStart":     layout.AlignmentDirectionalTopStart,
	"topEnd":       layout.AlignmentDirectionalTopEnd,
	"centerStart":  layout.AlignmentDirectionalCenterStart,
	"centerEnd":    layout.AlignmentDirectionalCenterEnd,
	"bottomStart":  layout.AlignmentDirectionalBottomStart,
	"bottomEnd":    layout.AlignmentDirectionalBottomEnd,
}

func parseAlignment(name string) (layout.AlignmentGeometry, error) {
	if name == "" {
		return nil, nil
	}
	align, ok := alignments[name]
	if !ok {
		return nil, fmt.Errorf("unknown alignment %q", name)
	}
	return align, nil
}

// parseColor accepts #RRGGBB, #AARRGGBB, or an SVG 1.1 color name.
func parseColor(value string) (rendering.Color, error) {
	if value == "" {
		return rendering.ColorTransparent, stderrors.New("missing color")
	}
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		parsed, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
		switch len(hex) {
		case 6:
			return rendering.Color(parsed | 0xFF000000), nil
		case 8:
			return rendering.Color(parsed), nil
		default:
			return 0, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", value)
		}
	}
	named, ok := colornames.Map[strings.ToLower(value)]
	if !ok {
		return 0, fmt.Errorf("unknown color name %q", value)
	}
	return colorFromRGBA(named), nil
}

func colorFromRGBA(c color.RGBA) rendering.Color {
	return rendering.RGBA(c.R, c.G, c.B, c.A)
}

func sceneErr(op string, err error) error {
	return &errors.FrescoError{Op: op, Kind: errors.KindScene, Err: err}
}
