package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/qrstl/pkg/geometry"
)

func tagBounds() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	bounds.Extend(geometry.NewVector3(-45, -45, -5))
	bounds.Extend(geometry.NewVector3(45, 45, 2))
	return bounds
}

func TestNewCameraLooksDownAtCenter(t *testing.T) {
	camera := NewCamera(tagBounds())

	center := tagBounds().Center()
	if camera.Target != center {
		t.Errorf("Target failed: expected %v, got %v", center, camera.Target)
	}
	if camera.Position.Z <= center.Z {
		t.Error("camera should start above the model")
	}
	if camera.Distance != 180 {
		t.Errorf("Distance failed: expected 180, got %v", camera.Distance)
	}
}

func TestNewCameraEmptyBounds(t *testing.T) {
	camera := NewCamera(geometry.BoundingBox{})

	if camera.Distance <= 0 {
		t.Errorf("Distance must stay positive, got %v", camera.Distance)
	}
}

func TestCameraProjectTargetHitsScreenCenter(t *testing.T) {
	camera := NewCamera(tagBounds())

	x, y, z := camera.Project(camera.Target, 800, 600)
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Errorf("Project failed: expected (400, 300), got (%v, %v)", x, y)
	}
	if math.Abs(z-camera.Distance) > 1e-6 {
		t.Errorf("depth failed: expected %v, got %v", camera.Distance, z)
	}
}

func TestCameraRotateClampsVerticalAngle(t *testing.T) {
	camera := NewCamera(tagBounds())

	camera.Rotate(10, 0)
	if camera.RotationX >= math.Pi/2 {
		t.Errorf("RotationX not clamped: got %v", camera.RotationX)
	}

	camera.Rotate(-20, 0)
	if camera.RotationX <= -math.Pi/2 {
		t.Errorf("RotationX not clamped: got %v", camera.RotationX)
	}
}

func TestCameraRotateKeepsDistance(t *testing.T) {
	camera := NewCamera(tagBounds())
	camera.Rotate(0.3, 0.7)

	distance := camera.Position.Distance(camera.Target)
	if math.Abs(distance-camera.Distance) > 1e-9 {
		t.Errorf("orbit distance failed: expected %v, got %v", camera.Distance, distance)
	}
}

func TestCameraZoomClampsMinimum(t *testing.T) {
	camera := NewCamera(tagBounds())

	camera.Zoom(-0.9999)
	camera.Zoom(-0.9999)
	if camera.Distance < 0.1 {
		t.Errorf("Distance below minimum: got %v", camera.Distance)
	}
}

func TestCameraRefitKeepsOrbitAngles(t *testing.T) {
	camera := NewCamera(tagBounds())
	camera.Rotate(0.4, -0.2)

	bigger := geometry.NewBoundingBox()
	bigger.Extend(geometry.NewVector3(-100, -100, -10))
	bigger.Extend(geometry.NewVector3(100, 100, 10))
	camera.Refit(bigger)

	if camera.RotationX != 0.4 || camera.RotationY != -0.2 {
		t.Error("Refit must keep the orbit angles")
	}
	if camera.Distance != 400 {
		t.Errorf("Refit distance failed: expected 400, got %v", camera.Distance)
	}
	if camera.Target != bigger.Center() {
		t.Errorf("Refit target failed: got %v", camera.Target)
	}
}
