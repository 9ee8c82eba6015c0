// Package alert decides alert edges from device health. It holds no state;
// callers persist the per-kind flags and serialize evaluations.
package alert

import (
	"fmt"
	"time"

	"petfeeder/internal/domain/entity"
)

// Edge is the transition produced by one evaluation.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeRaise
	EdgeClear
)

func (e Edge) String() string {
	switch e {
	case EdgeRaise:
		return "raise"
	case EdgeClear:
		return "clear"
	default:
		return "none"
	}
}

// Low battery fires while the estimated runtime is inside this window.
const (
	LowBatteryMinRuntime = 1500.0 // seconds
	LowBatteryMaxRuntime = 1800.0 // seconds
	LowBatteryMaxVoltage = 3.30
)

// DecideHeartbeat returns the edge for kind after a heartbeat updated status.
// Offline can only clear here; raising it is the sweep's job.
func DecideHeartbeat(kind entity.AlertKind, alerting bool, status *entity.DeviceStatus) Edge {
	switch kind {
	case entity.AlertOffline:
		if alerting {
			return EdgeClear
		}
	case entity.AlertPowerDisconnected:
		return toggle(alerting, !status.OnPower)
	case entity.AlertLowBattery:
		if !alerting && LowBattery(status) {
			return EdgeRaise
		}
		if alerting && status.OnPower {
			return EdgeClear
		}
	case entity.AlertLowHopper:
		return toggle(alerting, status.IsHopperLow)
	}

	return EdgeNone
}

// DecideSilence returns EdgeRaise once a device has been silent longer than
// threshold and is not already alerting.
func DecideSilence(alerting bool, silentFor, threshold time.Duration) Edge {
	if !alerting && silentFor > threshold {
		return EdgeRaise
	}

	return EdgeNone
}

func toggle(alerting, condition bool) Edge {
	switch {
	case condition && !alerting:
		return EdgeRaise
	case !condition && alerting:
		return EdgeClear
	default:
		return EdgeNone
	}
}

// LowBattery reports whether status is inside the low battery window.
func LowBattery(status *entity.DeviceStatus) bool {
	runtime := status.RuntimeSeconds()

	return !status.OnPower &&
		runtime > LowBatteryMinRuntime &&
		runtime < LowBatteryMaxRuntime &&
		status.BatteryCRate < 0 &&
		status.BatteryVoltage <= LowBatteryMaxVoltage
}

// Message returns the notification text for an edge. ok is false for edges
// that flip the flag silently.
func Message(kind entity.AlertKind, edge Edge, status *entity.DeviceStatus) (text string, ok bool) {
	switch {
	case kind == entity.AlertOffline && edge == EdgeRaise:
		return "Your feeder is currently offline, possibly lost an internet connection or it was powered off.", true
	case kind == entity.AlertOffline && edge == EdgeClear:
		return "Your feeder is back online.", true
	case kind == entity.AlertPowerDisconnected && edge == EdgeRaise:
		return "Power has been disconnected from your feeder. It is currently running on battery.", true
	case kind == entity.AlertPowerDisconnected && edge == EdgeClear:
		return "The power to your feeder has been restored.", true
	case kind == entity.AlertLowBattery && edge == EdgeRaise:
		minutes := int(status.RuntimeSeconds() / 60)

		return fmt.Sprintf("Your feeder's backup battery has %d minutes of running time remaining. "+
			"Please connect the power to the feeder as soon as possible.", minutes), true
	case kind == entity.AlertLowHopper && edge == EdgeRaise:
		return "Your feeder is low on food. Please refill the hopper as soon as possible.", true
	case kind == entity.AlertLowHopper && edge == EdgeClear:
		return "The hopper has been filled up. Please indicate the current hopper level on the website.", true
	}

	return "", false
}
