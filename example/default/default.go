package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/player"
	"github.com/oomph-ac/vrloco/settings"
	"github.com/oomph-ac/vrloco/vignette"
	"github.com/oomph-ac/vrloco/world"
	"github.com/sirupsen/logrus"
)

const (
	frameRate   = 90
	frameLength = time.Second / frameRate
)

// logSink is a vignette material that only remembers what it was given.
type logSink struct {
	radius float32
	centre mgl32.Vec4
}

func (s *logSink) SetScalarParameterValue(_ string, v float32)    { s.radius = v }
func (s *logSink) SetVectorParameterValue(_ string, v mgl32.Vec4) { s.centre = v }

// The following program walks and teleports a character around a small synthetic level
// without a headset, logging what the locomotion system does every second.
func main() {
	path := "config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if os.Getenv("DBG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	conf, err := settings.Load(path)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to initialise sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if addr := os.Getenv("STATSVIEW_ADDR"); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	w := buildLevel(conf)
	c, err := player.New(log, conf, w, mgl32.Vec3{0, 0, conf.Character.HalfHeight})
	if err != nil {
		log.Fatalf("unable to create character: %v", err)
	}
	ctrl := player.NewController("demo")
	c.Possess(ctrl)

	projector := vignette.NewPerspectiveProjector(c.Camera(), 90, 1920, 1080)
	sink := &logSink{}
	c.SetProjector(projector)
	c.SetRenderSink(sink)

	realtime := os.Getenv("REALTIME") != ""
	for f := 0; f < frameRate*12; f++ {
		second := float32(f) / frameRate
		script(c, second)

		c.Tick(frameLength)
		projector.SetCamera(c.Camera())

		if f%frameRate == 0 {
			dest, reason := c.Destination()
			log.WithFields(logrus.Fields{
				"location":    game.RoundVec32(c.Location(), 1),
				"destination": dest.Valid,
				"reason":      reason,
				"transition":  c.TransitionState(),
				"fade":        fmt.Sprintf("%.2f", ctrl.Camera().Alpha()),
				"vignette":    fmt.Sprintf("%.2f", sink.radius),
			}).Infof("t=%.0fs", second)
		}
		if realtime {
			time.Sleep(frameLength)
		}
	}
	c.Destroy()
}

// buildLevel returns a floor with a raised platform, a wall and a pit.
func buildLevel(conf settings.Settings) *world.World {
	w := world.NewForSettings(conf)
	w.AddFloor(-2000, -2000, 2000, 2000, 0)
	w.AddFloor(2500, -2000, 6000, 2000, 0)
	w.AddFloor(800, 600, 1400, 1200, 60)
	w.AddWall(cube.Box(-2000, 2000, 0, 6000, 2020, 400))
	return w
}

// script feeds tracked poses and input as if a user was playing.
func script(c *player.Character, second float32) {
	head := game.NewTransform(mgl32.Vec3{0, 0, 170}, mgl32.QuatIdent())
	hand := game.NewTransform(mgl32.Vec3{20, 25, 120}, game.PitchRotation(30))

	switch {
	case second < 3:
		// Walk forward while looking around.
		head.Rotation = game.YawRotation(20 * second)
		c.MoveForward(1)
	case second < 4:
		// Strafe with the controller aimed at the floor.
		c.MoveRight(0.5)
	case second < 6:
		// Aim at the platform and teleport onto it.
		hand.Rotation = game.YawRotation(40).Mul(game.PitchRotation(20))
		if second >= 4.5 && second < 4.5+1.0/frameRate {
			c.BeginTeleport()
		}
	case second < 9:
		// Point across the pit.
		hand.Rotation = game.PitchRotation(-10)
		if second >= 8 && second < 8+1.0/frameRate {
			c.BeginTeleport()
		}
	default:
		// Physically step aside in the play space.
		head.Location = mgl32.Vec3{40 * (second - 9), -30, 170}
	}
	c.SetTracking(head, hand)
}
