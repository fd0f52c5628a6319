package diagram

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
)

// ============================================================
// PNG Export
// ============================================================

// pngScene is the raster-friendly reduction of a diagram: the export always
// shows the fully revealed figure.
type pngScene struct {
	polylines [][]geometry.Point
	dashed    [][2]geometry.Point
	circles   []pngCircle
	labels    []pngLabel
}

type pngCircle struct {
	center geometry.Point
	radius float64
}

type pngLabel struct {
	at   geometry.Point
	text string
}

// RenderPNG rasterizes the diagram state. Unknown types and invalid shape
// data are returned as errors; the HTTP layer decides the fallback.
func RenderPNG(st State, width, height int) ([]byte, error) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	scene, err := buildPNGScene(st, float64(width), float64(height))
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	dc.SetColor(color.Black)
	dc.SetLineWidth(1.5)
	for _, poly := range scene.polylines {
		for i := range poly {
			next := poly[(i+1)%len(poly)]
			dc.DrawLine(poly[i].X, poly[i].Y, next.X, next.Y)
		}
		dc.Stroke()
	}

	dc.SetDash(6, 4)
	dc.SetColor(color.Gray{Y: 0x88})
	for _, seg := range scene.dashed {
		dc.DrawLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetColor(color.Black)
	for _, c := range scene.circles {
		dc.DrawCircle(c.center.X, c.center.Y, c.radius)
		dc.Stroke()
	}

	for _, label := range scene.labels {
		dc.DrawStringAnchored(label.text, label.at.X, label.at.Y, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// buildPNGScene reduces each diagram family to outline geometry.
func buildPNGScene(st State, width, height float64) (*pngScene, error) {
	lang := i18n.Parse(st.Language)
	scene := &pngScene{}

	caption := func(key string, value float64) pngLabel {
		return pngLabel{
			at:   geometry.Point{X: width / 2, Y: height - 14},
			text: fmt.Sprintf("%s = %s", i18n.T(lang, "calc."+key), fmtNum(value)),
		}
	}

	switch st.Type {
	case "triangle", "triangle_congruence", "triangle_similarity":
		var data triangleData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		result, err := geometry.SolveTriangle(geometry.Triangle{A: data.SideA, B: data.SideB, C: data.SideC})
		if err != nil {
			return nil, err
		}
		pts := fitTriangle(data.SideA, data.SideB, data.SideC, width, height)
		scene.polylines = append(scene.polylines, pts[:])
		scene.labels = append(scene.labels, caption("area", result.Area))

	case "right_triangle":
		var data rightTriangleData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		result, err := geometry.SolveRightTriangle(geometry.RightTriangle{LegA: data.LegA, LegB: data.LegB})
		if err != nil {
			return nil, err
		}
		raw := []geometry.Point{{X: 0, Y: 0}, {X: data.LegB, Y: 0}, {X: 0, Y: -data.LegA}}
		scene.polylines = append(scene.polylines, geometry.FitPoints(raw, width, height))
		scene.labels = append(scene.labels, caption("hypotenuse", result.Hypotenuse))

	case "circle", "circle_sector":
		var data sectorData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		if _, err := geometry.SolveCircle(geometry.Circle{Radius: data.Radius}); err != nil {
			return nil, err
		}
		center := geometry.Point{X: width / 2, Y: height / 2}
		r := math.Min(width, height) / 2 * 0.82
		scene.circles = append(scene.circles, pngCircle{center: center, radius: r})
		edge := geometry.Point{X: center.X + r*math.Cos(-math.Pi/4), Y: center.Y + r*math.Sin(-math.Pi/4)}
		scene.dashed = append(scene.dashed, [2]geometry.Point{center, edge})
		scene.labels = append(scene.labels, pngLabel{
			at:   geometry.LabelOffset(center, edge, 14),
			text: fmt.Sprintf("r = %s", fmtNum(data.Radius)),
		})

	case "regular_polygon":
		var data polygonData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		result, err := geometry.SolveRegularPolygon(geometry.RegularPolygon{Sides: data.Sides, SideLength: data.SideLength})
		if err != nil {
			return nil, err
		}
		pts := geometry.FitPoints(geometry.RegularPolygonVertices(data.Sides, data.SideLength), width, height)
		scene.polylines = append(scene.polylines, pts)
		scene.dashed = append(scene.dashed, [2]geometry.Point{centroid(pts), geometry.Midpoint(pts[0], pts[1])})
		scene.labels = append(scene.labels, caption("apothem", result.Apothem))

	case "rhombus":
		var data rhombusData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		result, err := geometry.SolveRhombus(geometry.Rhombus{Diagonal1: data.Diagonal1, Diagonal2: data.Diagonal2})
		if err != nil {
			return nil, err
		}
		raw := []geometry.Point{
			{X: -data.Diagonal1 / 2, Y: 0}, {X: 0, Y: -data.Diagonal2 / 2},
			{X: data.Diagonal1 / 2, Y: 0}, {X: 0, Y: data.Diagonal2 / 2},
		}
		pts := geometry.FitPoints(raw, width, height)
		scene.polylines = append(scene.polylines, pts)
		scene.dashed = append(scene.dashed,
			[2]geometry.Point{pts[0], pts[2]},
			[2]geometry.Point{pts[1], pts[3]})
		scene.labels = append(scene.labels, caption("area", result.Area))

	case "trapezoid":
		var data trapezoidData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		trap := geometry.Trapezoid{BaseA: data.BaseA, BaseB: data.BaseB, Height: data.Height}
		result, err := geometry.SolveTrapezoid(trap)
		if err != nil {
			return nil, err
		}
		rawQuad := geometry.TrapezoidVertices(trap)
		scene.polylines = append(scene.polylines, geometry.FitPoints(rawQuad[:], width, height))
		scene.labels = append(scene.labels, caption("area", result.Area))

	case "rectangle", "square":
		var data rectangleData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		if st.Type == "square" {
			var sq squareData
			if err := st.decodeData(&sq); err != nil {
				return nil, err
			}
			data.Width, data.Height = sq.Side, sq.Side
		}
		result, err := geometry.SolveRectangle(geometry.Rectangle{Width: data.Width, Height: data.Height})
		if err != nil {
			return nil, err
		}
		raw := []geometry.Point{{X: 0, Y: 0}, {X: data.Width, Y: 0}, {X: data.Width, Y: data.Height}, {X: 0, Y: data.Height}}
		pts := geometry.FitPoints(raw, width, height)
		scene.polylines = append(scene.polylines, pts)
		scene.dashed = append(scene.dashed, [2]geometry.Point{pts[0], pts[2]})
		scene.labels = append(scene.labels, caption("diagonal", result.Diagonal))

	case "vertical_angles", "supplementary_angles", "complementary_angles", "corresponding_angles":
		var data angleData
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		if err := validateAngle(st.Type, data.Angle); err != nil {
			return nil, err
		}

		if st.Type == "corresponding_angles" {
			margin := width * 0.09
			y1, y2 := height*0.33, height*0.67
			x1 := width * 0.5
			x2 := x1 + (y2-y1)/math.Tan(degToRad(data.Angle))
			scene.polylines = append(scene.polylines,
				[]geometry.Point{{X: margin, Y: y1}, {X: width - margin, Y: y1}},
				[]geometry.Point{{X: margin, Y: y2}, {X: width - margin, Y: y2}},
				[]geometry.Point{{X: x1, Y: y1}, {X: x2, Y: y2}})
		} else {
			center := geometry.Point{X: width / 2, Y: height / 2}
			r := math.Min(width, height) / 2 * 0.82
			rad := degToRad(data.Angle)
			ray := func(theta float64) geometry.Point {
				return geometry.Point{X: center.X + r*math.Cos(theta), Y: center.Y - r*math.Sin(theta)}
			}
			scene.polylines = append(scene.polylines,
				[]geometry.Point{ray(math.Pi), ray(0)})
			if st.Type == "complementary_angles" {
				scene.polylines = append(scene.polylines,
					[]geometry.Point{center, ray(math.Pi / 2)},
					[]geometry.Point{center, ray(rad)})
			} else {
				scene.polylines = append(scene.polylines,
					[]geometry.Point{ray(rad + math.Pi), ray(rad)})
			}
		}

		related, relation := relatedAngle(st.Type, data.Angle)
		scene.labels = append(scene.labels, pngLabel{
			at:   geometry.Point{X: width / 2, Y: height - 14},
			text: fmt.Sprintf("%s° %s %s°", fmtNum(data.Angle), relation, fmtNum(related)),
		})

	case "law_of_sines":
		var data geometry.LawOfSinesInput
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		solved, err := geometry.SolveLawOfSines(data)
		if err != nil {
			return nil, err
		}
		pts := fitTriangle(solved.SideA, solved.SideB, solved.SideC, width, height)
		scene.polylines = append(scene.polylines, pts[:])

	case "law_of_cosines":
		var data geometry.LawOfCosinesInput
		if err := st.decodeData(&data); err != nil {
			return nil, err
		}
		solved, err := geometry.SolveLawOfCosines(data)
		if err != nil {
			return nil, err
		}
		pts := fitTriangle(solved.SideA, solved.SideB, solved.SideC, width, height)
		scene.polylines = append(scene.polylines, pts[:])

	default:
		return nil, fmt.Errorf("no raster renderer for diagram type %q", st.Type)
	}

	return scene, nil
}
