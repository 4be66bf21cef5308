package sift

import (
	"strings"
	"testing"

	"github.com/sift-dev/sift/src/util"
)

func TestReadFromCommand(t *testing.T) {
	strs := []string{}
	eb := util.NewEventBox()
	reader := NewReader(
		func(s []byte) bool { strs = append(strs, string(s)); return true },
		eb, false)

	reader.startEventPoller()

	// Check EventBox
	if eb.Peek(EvtReadNew) {
		t.Error("EvtReadNew should not be set yet")
	}

	// Normal command
	reader.fin(reader.readFromCommand(`echo abc&&echo def`))
	if len(strs) != 2 || strs[0] != "abc" || strs[1] != "def" {
		t.Errorf("%s", strs)
	}

	// Check EventBox again
	eb.WaitFor(EvtReadFin)

	// Wait should return immediately
	eb.Wait(func(events *util.Events) {
		if value, found := (*events)[EvtReadFin]; !found || value != nil {
			t.Error("EvtReadFin should carry a nil error:", value)
		}
		events.Clear()
	})

	// EventBox is cleared
	if eb.Peek(EvtReadNew) {
		t.Error("EvtReadNew should not be set anymore")
	}
}

func TestReadFromFailingCommand(t *testing.T) {
	strs := []string{}
	eb := util.NewEventBox()
	reader := NewReader(
		func(s []byte) bool { strs = append(strs, string(s)); return true },
		eb, false)

	reader.startEventPoller()
	reader.fin(reader.readFromCommand(`no-such-command 2> /dev/null`))
	if len(strs) > 0 {
		t.Errorf("%s", strs)
	}

	eb.WaitFor(EvtReadFin)
	eb.Wait(func(events *util.Events) {
		if value, found := (*events)[EvtReadFin]; !found || value == nil {
			t.Error("EvtReadFin should carry the command error")
		}
		events.Clear()
	})
}

func TestFeedIntoPool(t *testing.T) {
	pool := NewItemPool()
	eb := util.NewEventBox()
	count := int32(0)
	reader := NewReader(
		func(s []byte) bool {
			item := NewItem(string(s), ItemIndex{0, count}, ItemOptions{})
			count++
			pool.Append([]*Item{item})
			return true
		}, eb, false)

	reader.feed(strings.NewReader("foo\nbar\r\nbaz"))

	taken := pool.Take()
	if len(taken) != 3 ||
		taken[0].Text() != "foo" || taken[1].Text() != "bar" || taken[2].Text() != "baz" {
		t.Error("Invalid items:", taken)
	}
	if taken[2].Index() != 2 {
		t.Error("Invalid index:", taken[2].Index())
	}
}

func TestFeedDelimNil(t *testing.T) {
	strs := []string{}
	eb := util.NewEventBox()
	reader := NewReader(
		func(s []byte) bool { strs = append(strs, string(s)); return true },
		eb, true)

	reader.feed(strings.NewReader("abc\x00def\nghi\x00"))
	if len(strs) != 2 || strs[0] != "abc" || strs[1] != "def\nghi" {
		t.Errorf("%s", strs)
	}
}
