package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-grid-renderer/internal/config"
)

const tolerance = 1e-4

func approxVec(a, b mgl32.Vec3) bool {
	return math.Abs(float64(a[0]-b[0])) < tolerance &&
		math.Abs(float64(a[1]-b[1])) < tolerance &&
		math.Abs(float64(a[2]-b[2])) < tolerance
}

func gridConfig(rows, cols int) *config.Config {
	return &config.Config{
		Grid: config.GridConfig{
			Rows:         rows,
			Cols:         cols,
			Spacing:      2,
			Radius:       1,
			Albedo:       [3]float32{1, 0, 0},
			MinRoughness: 0.05,
		},
		Lights: []config.LightConfig{
			{Position: [3]float32{0, 0, 10}, Color: [3]float32{1, 1, 1}, Intensity: 1000},
		},
	}
}

func TestBuildGridSweep(t *testing.T) {
	sc, err := Build(gridConfig(3, 4))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(sc.Spheres) != 12 {
		t.Fatalf("Expected 12 spheres, got %d", len(sc.Spheres))
	}

	first := sc.Spheres[0]
	if !approxVec(first.Center, mgl32.Vec3{-3, -2, 0}) {
		t.Errorf("Expected first center (-3,-2,0), got %v", first.Center)
	}
	if first.Material.Metallic != 0 {
		t.Errorf("Expected first row metallic 0, got %v", first.Material.Metallic)
	}
	if math.Abs(float64(first.Material.Roughness-0.05)) > tolerance {
		t.Errorf("Expected first column roughness clamped to 0.05, got %v", first.Material.Roughness)
	}

	last := sc.Spheres[11]
	if !approxVec(last.Center, mgl32.Vec3{3, 2, 0}) {
		t.Errorf("Expected last center (3,2,0), got %v", last.Center)
	}
	if last.Material.Metallic != 1 {
		t.Errorf("Expected last row metallic 1, got %v", last.Material.Metallic)
	}
	if last.Material.Roughness != 1 {
		t.Errorf("Expected last column roughness 1, got %v", last.Material.Roughness)
	}

	// Middle column sits on the linear sweep before clamping
	mid := sc.Spheres[1].Material.Roughness
	if math.Abs(float64(mid)-1.0/3.0) > tolerance {
		t.Errorf("Expected column 1 roughness 1/3, got %v", mid)
	}

	// Grid is centered on the origin
	var sum mgl32.Vec3
	for _, s := range sc.Spheres {
		sum = sum.Add(s.Center)
	}
	if !approxVec(sum.Mul(1.0/12.0), mgl32.Vec3{}) {
		t.Errorf("Expected grid centroid at origin, got %v", sum.Mul(1.0/12.0))
	}
}

func TestBuildSingleCell(t *testing.T) {
	sc, err := Build(gridConfig(1, 1))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(sc.Spheres) != 1 {
		t.Fatalf("Expected 1 sphere, got %d", len(sc.Spheres))
	}
	s := sc.Spheres[0]
	if !approxVec(s.Center, mgl32.Vec3{}) {
		t.Errorf("Expected single sphere at origin, got %v", s.Center)
	}
	if s.Material.Metallic != 0 {
		t.Errorf("Expected metallic 0, got %v", s.Material.Metallic)
	}
	if math.Abs(float64(s.Material.Roughness-0.05)) > tolerance {
		t.Errorf("Expected roughness floor 0.05, got %v", s.Material.Roughness)
	}
}

func TestBuildRejectsEmptyGrid(t *testing.T) {
	cfg := gridConfig(0, 5)
	if _, err := Build(cfg); err == nil {
		t.Error("Expected error for zero-row grid")
	}
}

func TestBuildRejectsTooManyLights(t *testing.T) {
	cfg := gridConfig(1, 1)
	cfg.Lights = nil
	for i := 0; i < 11; i++ {
		cfg.Lights = append(cfg.Lights, config.LightConfig{
			Position:  [3]float32{float32(i), 0, 10},
			Color:     [3]float32{1, 1, 1},
			Intensity: 100,
		})
	}

	_, err := Build(cfg)
	if err == nil {
		t.Fatal("Expected error for 11 lights")
	}
	if !strings.Contains(err.Error(), "max 10") {
		t.Errorf("Expected capacity in error, got %q", err.Error())
	}
}

func TestBuildRejectsNegativeIntensity(t *testing.T) {
	cfg := gridConfig(1, 1)
	cfg.Lights[0].Intensity = -5

	_, err := Build(cfg)
	if err == nil {
		t.Fatal("Expected error for negative intensity")
	}
	if !strings.Contains(err.Error(), "negative intensity") {
		t.Errorf("Expected intensity in error, got %q", err.Error())
	}
}

func TestBuildLightRig(t *testing.T) {
	cfg := gridConfig(2, 2)
	cfg.Lights = append(cfg.Lights, config.LightConfig{
		Position:  [3]float32{5, 5, 10},
		Color:     [3]float32{1, 0.9, 0.8},
		Intensity: 500,
	})

	sc, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if sc.Lights.Active() != 2 {
		t.Fatalf("Expected 2 active lights, got %d", sc.Lights.Active())
	}
	l := sc.Lights.At(1)
	if !approxVec(l.Position, mgl32.Vec3{5, 5, 10}) {
		t.Errorf("Expected light 1 at (5,5,10), got %v", l.Position)
	}
	if l.Intensity != 500 {
		t.Errorf("Expected intensity 500, got %v", l.Intensity)
	}
}

func TestOrbitCameraAzimuth(t *testing.T) {
	cam := OrbitCamera{
		Distance: 10,
		FovDeg:   45,
		Aspect:   1,
		Near:     0.1,
		Far:      100,
	}

	tests := []struct {
		name    string
		azimuth float32
		eye     mgl32.Vec3
	}{
		{"front", 0, mgl32.Vec3{0, 0, 10}},
		{"right", 90, mgl32.Vec3{10, 0, 0}},
		{"back", 180, mgl32.Vec3{0, 0, -10}},
		{"left", 270, mgl32.Vec3{-10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := cam.StateAt(tt.azimuth)
			if !approxVec(state.WorldPosition, tt.eye) {
				t.Errorf("Expected eye %v, got %v", tt.eye, state.WorldPosition)
			}
		})
	}
}

func TestOrbitCameraElevation(t *testing.T) {
	cam := OrbitCamera{
		Distance:     10,
		ElevationDeg: 30,
		FovDeg:       45,
		Aspect:       1,
		Near:         0.1,
		Far:          100,
	}

	state := cam.StateAt(0)
	want := mgl32.Vec3{0, 5, 10 * float32(math.Cos(math.Pi/6))}
	if !approxVec(state.WorldPosition, want) {
		t.Errorf("Expected eye %v, got %v", want, state.WorldPosition)
	}
}

func TestOrbitCameraProjectsTargetToCenter(t *testing.T) {
	cam := OrbitCamera{
		Distance: 10,
		FovDeg:   45,
		Aspect:   1,
		Near:     0.1,
		Far:      100,
	}
	state := cam.StateAt(37)

	clip := state.WorldToClip.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if clip.W() <= 0 {
		t.Fatalf("Expected target in front of camera, clip.w = %v", clip.W())
	}
	if math.Abs(float64(clip.X()/clip.W())) > tolerance {
		t.Errorf("Expected target at screen center x, got ndc x %v", clip.X()/clip.W())
	}
	if math.Abs(float64(clip.Y()/clip.W())) > tolerance {
		t.Errorf("Expected target at screen center y, got ndc y %v", clip.Y()/clip.W())
	}
	if math.Abs(float64(clip.W()-10)) > 1e-3 {
		t.Errorf("Expected clip w equal to camera distance 10, got %v", clip.W())
	}
}

func TestOrbitCameraOrientation(t *testing.T) {
	cam := OrbitCamera{
		Distance: 10,
		FovDeg:   45,
		Aspect:   1,
		Near:     0.1,
		Far:      100,
	}

	// Looking down -Z from (0,0,10): world +X is screen right, +Y is up.
	state := cam.StateAt(0)
	right := state.WorldToClip.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if right.X()/right.W() <= 0 {
		t.Errorf("Expected +X to project right of center, got ndc x %v", right.X()/right.W())
	}
	up := state.WorldToClip.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	if up.Y()/up.W() <= 0 {
		t.Errorf("Expected +Y to project above center, got ndc y %v", up.Y()/up.W())
	}
}
