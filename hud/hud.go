// Package hud turns a controller snapshot into labelled text lines and
// gauges that any front-end can draw.
package hud

import (
	"fmt"
	"strings"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/controller"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Line labels, in display order.
const (
	LabelPreset   = "preset"
	LabelMode     = "mode"
	LabelPosition = "position"
	LabelVelocity = "velocity"
	LabelSpeed    = "speed"
	LabelCrouch   = "crouch"
	LabelLean     = "lean"
	LabelGround   = "ground ticks"
	LabelFlying   = "flying"
)

// Lines holds the HUD text keyed by label in display order.
type Lines = orderedmap.OrderedMap[string, string]

// Build formats a snapshot. Precision and gauge width come from cfg.
func Build(snap controller.Snapshot, cfg *config.HUDConfig) *Lines {
	prec := cfg.Precision
	if prec < 0 {
		prec = 0
	}
	lines := orderedmap.NewOrderedMap[string, string]()
	lines.Set(LabelPreset, snap.Preset)
	lines.Set(LabelMode, snap.Output.Mode.String())
	lines.Set(LabelPosition, Vec(snap.Position, prec))
	lines.Set(LabelVelocity, Vec(snap.Velocity, prec))
	lines.Set(LabelSpeed, fmt.Sprintf("%.*f", prec, mathutil.Horizontal(snap.Velocity).Len()))
	lines.Set(LabelCrouch, Gauge(snap.State.CrouchDegree, 0, 1, cfg.GaugeWidth))
	lines.Set(LabelLean, Gauge(snap.State.LeanDegree, -1, 1, cfg.GaugeWidth))
	lines.Set(LabelGround, fmt.Sprint(snap.State.GroundTick))
	lines.Set(LabelFlying, fmt.Sprint(snap.State.Flying))
	return lines
}

// Vec formats a vector as "(x, y, z)".
func Vec(v mgl32.Vec3, prec int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", prec, v.X(), prec, v.Y(), prec, v.Z())
}

// Gauge draws value within [lo, hi] as a bar of width cells, for example
// "[####------]". Values outside the range are clamped.
func Gauge(value, lo, hi float32, width int) string {
	if width <= 0 {
		return ""
	}
	t := float32(0)
	if hi > lo {
		t = mathutil.Saturate((value - lo) / (hi - lo))
	}
	filled := int(t*float32(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Text joins the lines as "label: value" rows.
func Text(lines *Lines) string {
	var sb strings.Builder
	for el := lines.Front(); el != nil; el = el.Next() {
		fmt.Fprintf(&sb, "%s: %s\n", el.Key, el.Value)
	}
	return sb.String()
}
