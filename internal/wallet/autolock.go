package wallet

import "time"

// Lock order: mu before timerMu.

func (m *Manager) armTimer() {
	if m.autoLock <= 0 {
		return
	}

	m.timerMu.Lock()
	defer m.timerMu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}
	m.epoch++
	epoch := m.epoch
	m.timer = time.AfterFunc(m.autoLock, func() { m.expire(epoch) })
}

func (m *Manager) stopTimer() {
	m.timerMu.Lock()
	defer m.timerMu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	// invalidates a callback that already fired but has not locked yet
	m.epoch++
}

// touch postpones auto-lock after signing activity.
func (m *Manager) touch() {
	if m.autoLock <= 0 {
		return
	}

	m.timerMu.Lock()
	defer m.timerMu.Unlock()

	if m.timer != nil {
		m.timer.Reset(m.autoLock)
	}
}

func (m *Manager) expire(epoch uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timerMu.Lock()
	stale := epoch != m.epoch
	m.timerMu.Unlock()
	if stale || m.session == nil {
		return
	}

	m.dropSessionLocked()
	m.log.Info("wallet auto-locked after inactivity")
}
