package stats

import (
	"runtime"
)

// Memory records the best-effort peak heap usage of a run. Check is called
// from the miner at its allocation heavy points; the probe is advisory and
// never influences mining.
type Memory struct {
	peak uint64
}

func (m *Memory) Reset() {
	m.peak = 0
	m.Check()
}

func (m *Memory) Check() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > m.peak {
		m.peak = ms.HeapAlloc
	}
}

// Peak returns the largest heap size seen by Check, in bytes.
func (m *Memory) Peak() uint64 {
	return m.peak
}

// PeakMb returns the peak in mebibytes.
func (m *Memory) PeakMb() float64 {
	return float64(m.peak) / (1024.0 * 1024.0)
}
