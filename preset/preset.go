// Package preset loads named bundles of distortion steps from a YAML
// document: an ordered list of transform descriptions that Build resolves
// into concrete distortion.StateBuilder values.
package preset

import (
	"fmt"
	"io/ioutil"

	"github.com/g3n/meshwarp/distortion"
	"github.com/g3n/meshwarp/geom"
	"github.com/g3n/meshwarp/math32"

	"gopkg.in/yaml.v2"
)

// Builder parses and builds preset bundles.
type Builder struct {
	bundles map[string]*bundleDesc
}

type bundleDesc struct {
	Steps []*stepDesc
}

// stepDesc is a flattened description of any one of the nine transform
// configs, keyed by Type. Only the fields relevant to Type are read.
type stepDesc struct {
	Type string

	// shear_hori, shear_vert, rotate
	Angle int

	// skew_hori, skew_vert
	Ratio float32

	// camera_* and similarity_mls
	GridSize int

	// camera_cubic_curve
	CurveAlpha     float32
	CurveBeta      float32
	CurveDirection float32
	CurveScale     float32

	// camera_plane_line_fold
	FoldPoint      point2
	FoldDirection  float32
	FoldPerturbVec vec3
	FoldAlpha      float32

	// camera_plane_line_curve
	LinePoint      point2
	LineDirection  float32
	LinePerturbVec vec3
	LineAlpha      float32

	// shared by every camera_* step
	RotationUnitVec vec3
	RotationTheta   float32
	PrincipalPoint  *point2
	FocalLength     *float32
	CameraDistance  *float32

	// similarity_mls
	SrcHandlePoints []point2
	DstHandlePoints []point2
	RescaleAsSrc    bool
}

// point2 and vec3 give the YAML document plain numeric fields instead of
// requiring callers to spell out math32's struct tags.
type point2 struct {
	X float32
	Y float32
}

func (p point2) vec2() math32.Vector2 { return math32.Vector2{X: p.X, Y: p.Y} }

type vec3 struct {
	X float32
	Y float32
	Z float32
}

func (v vec3) vec3() math32.Vector3 { return math32.Vector3{X: v.X, Y: v.Y, Z: v.Z} }

const (
	typeShearHori        = "shear_hori"
	typeShearVert        = "shear_vert"
	typeRotate           = "rotate"
	typeSkewHori         = "skew_hori"
	typeSkewVert         = "skew_vert"
	typeCameraCubicCurve = "camera_cubic_curve"
	typeCameraPlaneFold  = "camera_plane_line_fold"
	typeCameraPlaneCurve = "camera_plane_line_curve"
	typeSimilarityMls    = "similarity_mls"
)

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {

	return &Builder{bundles: make(map[string]*bundleDesc)}
}

// ParseBytes parses a YAML document mapping bundle names to step lists. Any
// previously parsed bundles are discarded.
func (b *Builder) ParseBytes(doc []byte) error {

	bundles := make(map[string]*bundleDesc)
	if err := yaml.Unmarshal(doc, &bundles); err != nil {
		return err
	}
	b.bundles = bundles
	return nil
}

// ParseFile reads and parses a YAML file of bundles.
func (b *Builder) ParseFile(path string) error {

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return b.ParseBytes(data)
}

// Names returns the bundle names currently parsed.
func (b *Builder) Names() []string {

	names := make([]string, 0, len(b.bundles))
	for name := range b.bundles {
		names = append(names, name)
	}
	return names
}

// Build resolves a named bundle into an ordered list of StateBuilders, one
// per step, in document order.
func (b *Builder) Build(name string) ([]distortion.StateBuilder, error) {

	bd, ok := b.bundles[name]
	if !ok {
		return nil, fmt.Errorf("preset: no such bundle: %s", name)
	}

	cfgs := make([]distortion.StateBuilder, 0, len(bd.Steps))
	for i, sd := range bd.Steps {
		cfg, err := b.buildStep(sd)
		if err != nil {
			return nil, fmt.Errorf("preset: bundle %s step %d (%s): %w", name, i, sd.Type, err)
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func (b *Builder) buildStep(sd *stepDesc) (distortion.StateBuilder, error) {

	switch sd.Type {
	case typeShearHori:
		return distortion.ShearHoriConfig{Angle: sd.Angle}, nil
	case typeShearVert:
		return distortion.ShearVertConfig{Angle: sd.Angle}, nil
	case typeRotate:
		return distortion.RotateConfig{Angle: sd.Angle}, nil
	case typeSkewHori:
		return distortion.SkewHoriConfig{Ratio: sd.Ratio}, nil
	case typeSkewVert:
		return distortion.SkewVertConfig{Ratio: sd.Ratio}, nil
	case typeCameraCubicCurve:
		return distortion.CameraCubicCurveConfig{
			CurveAlpha: sd.CurveAlpha, CurveBeta: sd.CurveBeta,
			CurveDirection: sd.CurveDirection, CurveScale: sd.CurveScale,
			CameraModel: b.buildCameraModel(sd), GridSize: sd.GridSize,
		}, nil
	case typeCameraPlaneFold:
		return distortion.CameraPlaneLineFoldConfig{
			FoldPoint: sd.FoldPoint.vec2(), FoldDirection: sd.FoldDirection,
			FoldPerturbVec: sd.FoldPerturbVec.vec3(), FoldAlpha: sd.FoldAlpha,
			CameraModel: b.buildCameraModel(sd), GridSize: sd.GridSize,
		}, nil
	case typeCameraPlaneCurve:
		return distortion.CameraPlaneLineCurveConfig{
			CurvePoint: sd.LinePoint.vec2(), CurveDirection: sd.LineDirection,
			CurvePerturbVec: sd.LinePerturbVec.vec3(), CurveAlpha: sd.LineAlpha,
			CameraModel: b.buildCameraModel(sd), GridSize: sd.GridSize,
		}, nil
	case typeSimilarityMls:
		return distortion.SimilarityMlsConfig{
			SrcHandlePoints: toGeomPoints(sd.SrcHandlePoints),
			DstHandlePoints: toGeomPoints(sd.DstHandlePoints),
			GridSize:        sd.GridSize,
			RescaleAsSrc:    sd.RescaleAsSrc,
		}, nil
	default:
		return nil, fmt.Errorf("unknown step type: %s", sd.Type)
	}
}

func (b *Builder) buildCameraModel(sd *stepDesc) distortion.CameraModelConfig {

	cm := distortion.CameraModelConfig{
		RotationUnitVec: sd.RotationUnitVec.vec3(),
		RotationTheta:   sd.RotationTheta,
		FocalLength:     sd.FocalLength,
		CameraDistance:  sd.CameraDistance,
	}
	if sd.PrincipalPoint != nil {
		pp := sd.PrincipalPoint.vec2()
		cm.PrincipalPoint = &pp
	}
	return cm
}

func toGeomPoints(pts []point2) []geom.Point {

	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.NewPoint(p.X, p.Y)
	}
	return out
}
