package player

import (
	"fmt"

	"github.com/oomph-ac/vrloco/settings"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

const (
	DebugModeTeleport = iota
	DebugModeVignette
	DebugModeMovement
	DebugModeTransition
	debugModeCount
)

var debugModeNames = [debugModeCount]string{
	DebugModeTeleport:   "teleport",
	DebugModeVignette:   "vignette",
	DebugModeMovement:   "movement",
	DebugModeTransition: "transition",
}

// Debugger writes per-mode debug lines to the log. A line identical to the previous one of the
// same mode is dropped so that per-frame state only shows up when it changes.
type Debugger struct {
	log     *logrus.Logger
	enabled [debugModeCount]bool
	last    [debugModeCount]uint64
}

// NewDebugger returns a debugger with the modes enabled in s.
func NewDebugger(log *logrus.Logger, s settings.Settings) *Debugger {
	d := &Debugger{log: log}
	d.enabled[DebugModeTeleport] = s.Debug.LogTeleport
	d.enabled[DebugModeVignette] = s.Debug.LogVignette
	d.enabled[DebugModeMovement] = s.Debug.LogMovement
	d.enabled[DebugModeTransition] = s.Debug.LogTeleport
	return d
}

// Toggle flips a debug mode on or off.
func (d *Debugger) Toggle(mode int) {
	if mode < 0 || mode >= debugModeCount {
		return
	}
	d.enabled[mode] = !d.enabled[mode]
	d.last[mode] = 0
}

// Enabled ...
func (d *Debugger) Enabled(mode int) bool {
	return mode >= 0 && mode < debugModeCount && d.enabled[mode]
}

// Notify logs the formatted message if mode is enabled and cond holds.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	sum := xxh3.HashString(msg)
	if sum == d.last[mode] {
		return
	}
	d.last[mode] = sum
	d.log.Debugf("[%s] %s", debugModeNames[mode], msg)
}
