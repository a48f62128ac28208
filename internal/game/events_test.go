package game

import "testing"

func TestEventBusQueuesUntilFlush(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.Subscribe(EventJump, func(e Event) { got = append(got, e.Type) })
	bus.Subscribe(EventLand, func(e Event) { got = append(got, e.Type) })

	bus.Emit(Event{Type: EventJump})
	bus.Emit(Event{Type: EventLand})
	if len(got) != 0 {
		t.Fatalf("dispatched before Flush: %v", got)
	}
	bus.Flush()
	if len(got) != 2 || got[0] != EventJump || got[1] != EventLand {
		t.Fatalf("got %v, want [jump land]", got)
	}
	bus.Flush()
	if len(got) != 2 {
		t.Errorf("second Flush redelivered: %v", got)
	}
}

func TestEventBusNestedEmit(t *testing.T) {
	bus := NewEventBus()
	var seen []int
	bus.Subscribe(EventSegmentRecycled, func(e Event) {
		seen = append(seen, e.Data)
		if e.Data == 0 {
			bus.Emit(Event{Type: EventSegmentRecycled, Data: 1})
		}
	})
	bus.Emit(Event{Type: EventSegmentRecycled, Data: 0})
	bus.Flush()
	if len(seen) != 2 || seen[1] != 1 {
		t.Errorf("seen = %v", seen)
	}
}

func TestCameraResize(t *testing.T) {
	c := NewCamera(1280, 720)
	if c.Aspect != float32(1280)/720 {
		t.Fatalf("aspect = %v", c.Aspect)
	}
	c.Resize(0, 0)
	if c.Aspect != float32(1280)/720 {
		t.Errorf("zero resize changed aspect to %v", c.Aspect)
	}
	c.Resize(800, 800)
	if c.Aspect != 1 {
		t.Errorf("aspect = %v", c.Aspect)
	}
	// The corridor origin is ahead of the camera.
	p := c.View().Mul4x1([4]float32{0, 0, 0, 1})
	if p.Z() >= 0 {
		t.Errorf("origin view z = %v, want in front", p.Z())
	}
}

func TestNewSceneLighting(t *testing.T) {
	sc := newScene()
	if sc.Background != Palette.Background || sc.Ambient != Palette.Ambient {
		t.Errorf("palette not applied: %+v", sc)
	}
	if sc.Light.Position.Y != LightY || sc.Light.Range != LightRange {
		t.Errorf("light = %+v", sc.Light)
	}
}
