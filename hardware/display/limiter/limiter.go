// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces the emulation to the refresh rate of the emulated
// monitor. The Limiter type also measures the rate at which frames are
// actually produced.
package limiter

import (
	"sync/atomic"
	"time"
)

// Monitor is the host display the frames are shown on.
type Monitor interface {
	// MonitorRefreshRate returns the refresh rate of the host monitor and
	// whether the limit should be quantised to that rate.
	MonitorRefreshRate() (float32, bool)
}

// DefaultRefreshRate is used until the refresh rate of the emulated display is
// known.
const DefaultRefreshRate float32 = 50.0

// MatchRefreshRate can be used with SetLimit() to indicate that the limit
// should follow the refresh rate.
const MatchRefreshRate float32 = -1.0

// Limiter waits in CheckFrame() so that frames are produced at the limit rate.
type Limiter struct {
	// whether CheckFrame() should wait
	Active atomic.Bool

	// the refresh rate of the emulated display. this changes when the CRTC
	// registers are reprogrammed
	RefreshRate atomic.Value // float32

	// the rate the limiter is trying to achieve
	IdealFPS atomic.Value // float32

	// the value passed to SetLimit()
	requestedFPS atomic.Value // float32

	// the measured number of frames per second
	Measured atomic.Value // float32

	// number of frames for which CheckFrame() will not wait
	Nudge atomic.Int32

	// the pulse is not checked every frame. the number of frames between
	// checks depends on the rate
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	monitor Monitor
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limit matches the default refresh rate.
func NewLimiter() *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.pulse = time.NewTicker(time.Millisecond * 20)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.RefreshRate.Store(DefaultRefreshRate)
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetMonitor sets the host monitor. The limit is quantised to the monitor's
// refresh rate if the monitor requests it.
func (lmtr *Limiter) SetMonitor(monitor Monitor) {
	lmtr.monitor = monitor
	lmtr.SetLimit(lmtr.requestedFPS.Load().(float32))
}

// SetRefreshRate changes the refresh rate of the emulated display. If the
// limit is following the refresh rate then the limit is changed too.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	if refreshRate <= 0 || refreshRate == lmtr.RefreshRate.Load().(float32) {
		return
	}
	lmtr.RefreshRate.Store(refreshRate)
	if lmtr.requestedFPS.Load().(float32) <= 0 {
		lmtr.SetLimit(MatchRefreshRate)
	}
}

// SetLimit sets the number of frames per second. A value of MatchRefreshRate
// (or any value less than or equal to zero) follows the refresh rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}

	if lmtr.monitor != nil {
		hz, quantise := lmtr.monitor.MonitorRefreshRate()
		if quantise && fps >= hz*0.96 && fps <= hz*1.04 {
			fps = hz
		}
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called once per frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field once per second. It is cheap to
// call every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used after Stop().
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
