//go:build !ebiten

package rlbackend

import (
	"log/slog"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

func TestFailedStage(t *testing.T) {
	cases := []struct {
		warnings []string
		want     string
	}{
		{[]string{"SHADER: [ID 4] Failed to compile vertex shader code", "SHADER: [ID 4] Compile error: 0:3"}, "vertex"},
		{[]string{"SHADER: [ID 5] Failed to compile fragment shader code"}, "fragment"},
		{[]string{"SHADER: [ID 6] Failed to link shader program"}, "link"},
		{nil, "link"},
	}
	for _, c := range cases {
		if got := failedStage(c.warnings); got != c.want {
			t.Fatalf("failedStage(%q)=%q, want %q", c.warnings, got, c.want)
		}
	}
}

func TestPlatformFailed(t *testing.T) {
	if !platformFailed([]string{"GLFW: Failed to initialize GLFW"}) {
		t.Fatalf("GLFW init failure not detected")
	}
	if platformFailed([]string{"GLFW: Failed to initialize Window"}) {
		t.Fatalf("window failure reported as platform failure")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[rl.TraceLogLevel]slog.Level{
		rl.LogInfo:    slog.LevelDebug,
		rl.LogWarning: slog.LevelWarn,
		rl.LogError:   slog.LevelError,
		rl.LogFatal:   slog.LevelError,
	}
	for in, want := range cases {
		if got := slogLevel(int(in)); got != want {
			t.Fatalf("slogLevel(%d)=%v, want %v", in, got, want)
		}
	}
}

func TestTraceCapture(t *testing.T) {
	var tl traceLog
	tl.handle(int(rl.LogWarning), "outside")
	got := tl.capture(func() {
		tl.handle(int(rl.LogInfo), "SHADER: loaded")
		tl.handle(int(rl.LogWarning), "SHADER: [ID 3] Failed to compile fragment shader code \n")
	})
	if len(got) != 1 || got[0] != "SHADER: [ID 3] Failed to compile fragment shader code" {
		t.Fatalf("captured %q", got)
	}
}

func TestToMatrix(t *testing.T) {
	m := mgl32.Translate3D(2, 3, 4)
	rm := toMatrix(m)
	if rm.M12 != 2 || rm.M13 != 3 || rm.M14 != 4 || rm.M0 != 1 || rm.M15 != 1 {
		t.Fatalf("toMatrix translation=%v", rm)
	}
}

func TestConfigFlags(t *testing.T) {
	cases := []struct {
		cfg  Config
		want uint32
	}{
		{Config{}, 0},
		{Config{Antialias: true}, rl.FlagMsaa4xHint},
		{Config{VSync: true}, rl.FlagVsyncHint},
		{Config{Antialias: true, VSync: true}, rl.FlagMsaa4xHint | rl.FlagVsyncHint},
	}
	for _, c := range cases {
		if got := configFlags(c.cfg); got != c.want {
			t.Fatalf("configFlags(%+v)=%#x, want %#x", c.cfg, got, c.want)
		}
	}
}
