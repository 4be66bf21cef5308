package util

import "testing"

const (
	evtReadNew EventType = iota
	evtSearchNew
	evtSearchProgress
	evtSearchFin
)

func TestEventBox(t *testing.T) {
	eb := NewEventBox()

	// Wait should return immediately
	ch := make(chan bool)

	go func() {
		eb.Set(evtReadNew, 10)
		ch <- true
		<-ch
		eb.Set(evtSearchNew, 10)
		eb.Set(evtSearchNew, 15)
		eb.Set(evtSearchNew, 20)
		eb.Set(evtSearchProgress, 30)
		ch <- true
		<-ch
		eb.Set(evtSearchFin, 40)
		ch <- true
		<-ch
	}()

	count := 0
	sum := 0
	looping := true
	for looping {
		<-ch
		eb.Wait(func(events *Events) {
			for _, value := range *events {
				switch val := value.(type) {
				case int:
					sum += val
					looping = sum < 100
				}
			}
			events.Clear()
		})
		ch <- true
		count++
	}

	if count != 3 {
		t.Error("Invalid number of events", count)
	}
	if sum != 100 {
		t.Error("Invalid sum", sum)
	}
}

func TestEventBoxPeek(t *testing.T) {
	eb := NewEventBox()
	if eb.Peek(evtReadNew) {
		t.Error("Event should not be set yet")
	}
	eb.Set(evtReadNew, nil)
	if !eb.Peek(evtReadNew) {
		t.Error("Event should be set")
	}
}

func TestEventBoxWaitFor(t *testing.T) {
	eb := NewEventBox()
	go eb.Set(evtSearchFin, nil)
	eb.WaitFor(evtSearchFin)
	if !eb.Peek(evtSearchFin) {
		t.Error("Event should still be set")
	}
}
