package systems

import (
	"image"
	"image/color"
	"sort"

	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImageSource resolves the asset names held by components to loaded images.
type ImageSource interface {
	Image(name cfg.AssetName) *ebiten.Image
}

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Scratch buffers for path tessellation
	pathVertices []ebiten.Vertex
	pathIndices  []uint16

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// DrawBackground paints the rectangle behind the layers.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, w, h, cfg.Background.FillColor, false)
	vector.StrokeRect(screen, 0, 0, w, h, 1, cfg.Background.StrokeColor, false)
}

// NewDrawLayers returns a renderer for the looping background layers, back to front.
// Each layer shows a square region of its image, surface-height on a side,
// starting at the layer offset and stretched over the whole surface.
func NewDrawLayers(images ImageSource) ecs.RendererWithArg[ebiten.Image] {
	var layers []*components.LayerData
	return func(e *ecs.ECS, screen *ebiten.Image) {
		layers = layers[:0]
		components.Layer.Each(e.World, func(entry *donburi.Entry) {
			layers = append(layers, components.Layer.Get(entry))
		})
		sort.SliceStable(layers, func(i, j int) bool {
			return layers[i].Depth < layers[j].Depth
		})

		side := cfg.C.Height
		scaleX, scaleY := layerScale(side)
		for _, layer := range layers {
			img := images.Image(layer.Asset)
			if img == nil {
				continue
			}
			src := img.SubImage(layerSourceRect(layer, side)).(*ebiten.Image)

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Scale(scaleX, scaleY)
			screen.DrawImage(src, drawOp)
		}
	}
}

// layerSourceRect is the square region of a layer image shown on the
// surface: side pixels on a side, starting at the layer offset.
func layerSourceRect(layer *components.LayerData, side int) image.Rectangle {
	sx := int(layer.Offset)
	return image.Rect(sx, 0, sx+side, side)
}

// layerScale stretches a side x side layer region over the whole surface.
func layerScale(side int) (sx, sy float64) {
	return float64(cfg.C.Width) / float64(side), float64(cfg.C.Height) / float64(side)
}

// jeepSourceRect is the current frame of the jeep's sprite sheet.
func jeepSourceRect(jeep *components.JeepData) image.Rectangle {
	sx := int(jeep.SliceX())
	return image.Rect(sx, 0, sx+int(jeep.SliceWidth), int(jeep.Height))
}

// NewDrawJeep returns a renderer for the jeep's current sprite-sheet frame.
func NewDrawJeep(images ImageSource) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		components.Jeep.Each(e.World, func(entry *donburi.Entry) {
			jeep := components.Jeep.Get(entry)
			sheet := images.Image(jeep.Asset)
			if sheet == nil {
				return
			}

			frame := sheet.SubImage(jeepSourceRect(jeep)).(*ebiten.Image)

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(jeep.X, jeep.Y)
			screen.DrawImage(frame, drawOp)
		})
	}
}

// DrawDecoration strokes then fills each decoration outline, translated to its
// position and scaled. Decorations entirely off the surface are skipped.
func DrawDecoration(e *ecs.ECS, screen *ebiten.Image) {
	components.Decoration.Each(e.World, func(entry *donburi.Entry) {
		d := components.Decoration.Get(entry)
		if !d.Visible(float64(cfg.C.Width)) || len(d.Points) < 3 {
			return
		}

		var geoM ebiten.GeoM
		geoM.Scale(d.Scale, d.Scale)
		geoM.Translate(d.X, d.Y)

		var path vector.Path
		for i, p := range d.Points {
			x, y := geoM.Apply(p[0], p[1])
			if i == 0 {
				path.MoveTo(float32(x), float32(y))
				continue
			}
			path.LineTo(float32(x), float32(y))
		}
		path.Close()

		strokeOp := &vector.StrokeOptions{
			Width:      float32(d.StrokeWidth * d.Scale),
			LineJoin:   vector.LineJoinMiter,
			MiterLimit: 10,
		}
		pathVertices, pathIndices = path.AppendVerticesAndIndicesForStroke(pathVertices[:0], pathIndices[:0], strokeOp)
		drawPathTriangles(screen, pathVertices, pathIndices, cfg.Decoration.StrokeColor)

		pathVertices, pathIndices = path.AppendVerticesAndIndicesForFilling(pathVertices[:0], pathIndices[:0])
		drawPathTriangles(screen, pathVertices, pathIndices, cfg.Decoration.FillColor)
	})
}

func drawPathTriangles(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
