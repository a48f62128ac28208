package hallway

import (
	"math"

	"corridor/internal/scene"
)

// RecycleEvent describes one segment moved from the front to the back.
type RecycleEvent struct {
	Index  int     // creation index of the recycled segment
	Offset float64 // its new offset
	Total  uint64  // recycles since construction
}

// Manager owns the fixed segment pool. The pool is an arena of N slots
// with a rotating front pointer; pool order i is slots[(front+i)%N] and
// consecutive offsets always differ by exactly SegmentLength.
type Manager struct {
	cfg   Config
	slots []*Segment
	front int

	recycled  uint64
	distance  float64
	onRecycle func(RecycleEvent)
}

// NewManager builds cfg.SegmentCount segments at 0, -L, -2L, ... and
// attaches them under root.
func NewManager(cfg Config, f *Factory, root *scene.Node) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Manager{
		cfg:   cfg,
		slots: make([]*Segment, cfg.SegmentCount),
	}
	for i := range m.slots {
		seg := f.Build(i, -float64(i)*cfg.SegmentLength)
		m.slots[i] = seg
		if root != nil {
			root.Add(seg.Node())
		}
	}
	return m, nil
}

// OnRecycle registers a hook called once per recycled segment.
func (m *Manager) OnRecycle(fn func(RecycleEvent)) { m.onRecycle = fn }

// Advance scrolls every segment by Speed*dt toward the viewer and moves
// segments that have passed the threshold to the back. Negative or
// non-finite dt is treated as zero. Returns the number of recycles.
func (m *Manager) Advance(dt float64) int {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0
	}
	disp := m.cfg.Speed * dt
	if disp == 0 || math.IsInf(disp, 0) {
		return 0
	}
	m.distance += disp

	// The corridor repeats every span, so only the remainder is applied.
	// This bounds the recycle loop below to N.
	if span := m.Span(); disp >= span {
		disp = math.Mod(disp, span)
	}
	for _, s := range m.slots {
		s.setOffset(s.Offset() + disp)
	}

	n := 0
	for n < len(m.slots) && m.Front().Offset() > m.cfg.SegmentLength {
		m.recycleFront()
		n++
	}
	return n
}

func (m *Manager) recycleFront() {
	seg := m.slots[m.front]
	seg.setOffset(m.Back().Offset() - m.cfg.SegmentLength)
	m.front = (m.front + 1) % len(m.slots)
	m.recycled++
	if m.onRecycle != nil {
		m.onRecycle(RecycleEvent{Index: seg.Index(), Offset: seg.Offset(), Total: m.recycled})
	}
}

// Len is the constant pool size.
func (m *Manager) Len() int { return len(m.slots) }

// Segment returns the segment at pool position i, 0 being the front.
func (m *Manager) Segment(i int) *Segment {
	return m.slots[(m.front+i)%len(m.slots)]
}

func (m *Manager) Front() *Segment { return m.Segment(0) }
func (m *Manager) Back() *Segment  { return m.Segment(len(m.slots) - 1) }

// Segments returns the pool front to back in a new slice.
func (m *Manager) Segments() []*Segment {
	out := make([]*Segment, len(m.slots))
	for i := range out {
		out[i] = m.Segment(i)
	}
	return out
}

// Offsets returns segment offsets in pool order.
func (m *Manager) Offsets() []float64 {
	out := make([]float64, len(m.slots))
	for i := range out {
		out[i] = m.Segment(i).Offset()
	}
	return out
}

// Span is the total corridor length covered by the pool.
func (m *Manager) Span() float64 { return m.cfg.Span() }

// Recycled is the number of recycles since construction.
func (m *Manager) Recycled() uint64 { return m.recycled }

// Distance is the total distance scrolled.
func (m *Manager) Distance() float64 { return m.distance }

func (m *Manager) Config() Config { return m.cfg }
