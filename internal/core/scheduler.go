package core

import "time"

// scheduler tracks the single auto-refresh timer. A timer is identified by
// token; bumping the token orphans whatever timer the host still has running.
type scheduler struct {
	enabled  bool
	interval int
	visible  bool
	token    uint64
}

func (sc *scheduler) active() bool {
	return sc.enabled && sc.visible
}

func (sc *scheduler) period() time.Duration {
	return time.Duration(sc.interval) * time.Second
}

// ClampInterval bounds seconds to [MinRefreshInterval, MaxRefreshInterval].
func ClampInterval(seconds int) int {
	if seconds < MinRefreshInterval {
		return MinRefreshInterval
	}
	if seconds > MaxRefreshInterval {
		return MaxRefreshInterval
	}
	return seconds
}

// SetAutoRefresh turns the periodic reload on or off.
func (s *State) SetAutoRefresh(enabled bool) Effects {
	if s.scheduler.enabled == enabled {
		return nil
	}
	s.scheduler.enabled = enabled
	return s.reschedule()
}

// SetInterval sets the refresh interval in seconds, clamped to the allowed range.
func (s *State) SetInterval(seconds int) Effects {
	seconds = ClampInterval(seconds)
	if s.scheduler.interval == seconds {
		return nil
	}
	s.scheduler.interval = seconds
	return s.reschedule()
}

// SetVisible records whether the host is visible. Refreshing pauses while hidden.
func (s *State) SetVisible(visible bool) Effects {
	if s.scheduler.visible == visible {
		return nil
	}
	s.scheduler.visible = visible
	return s.reschedule()
}

// RefreshTick handles a tick from the timer identified by token. Ticks from
// superseded timers are ignored.
func (s *State) RefreshTick(token uint64) Effects {
	if token != s.scheduler.token || !s.scheduler.active() {
		return nil
	}
	fx := s.ReloadAll()
	return append(fx, StartRefresh{Token: token, Interval: s.scheduler.period()})
}

func (s *State) reschedule() Effects {
	s.scheduler.token++
	s.logger.Debug("auto refresh rescheduled",
		"enabled", s.scheduler.enabled,
		"visible", s.scheduler.visible,
		"interval", s.scheduler.interval,
		"timer", s.scheduler.token)
	fx := Effects{StopRefresh{}}
	if s.scheduler.active() {
		fx = append(fx, StartRefresh{Token: s.scheduler.token, Interval: s.scheduler.period()})
	}
	return fx
}
