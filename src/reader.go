package sift

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sift-dev/sift/src/util"
)

// Reader reads delimited records from a command or from standard input and
// hands them to the pusher, signaling progress through the event box
type Reader struct {
	pusher   func([]byte) bool
	eventBox *util.EventBox
	delimNil bool
	event    int32
}

// NewReader returns a new Reader object
func NewReader(pusher func([]byte) bool, eventBox *util.EventBox, delimNil bool) *Reader {
	return &Reader{pusher, eventBox, delimNil, int32(EvtReady)}
}

// startEventPoller coalesces pusher activity into EvtReadNew notifications
// with an adaptive interval, so a fast producer does not flood the
// consumer with wake-ups
func (r *Reader) startEventPoller() {
	go func() {
		ptr := &r.event
		pollInterval := readerPollIntervalMin
		for {
			if atomic.CompareAndSwapInt32(ptr, int32(EvtReadNew), int32(EvtReady)) {
				r.eventBox.Set(EvtReadNew, nil)
				pollInterval = readerPollIntervalMin
			} else if atomic.LoadInt32(ptr) == int32(EvtReadFin) {
				return
			} else {
				pollInterval += readerPollIntervalStep
				if pollInterval > readerPollIntervalMax {
					pollInterval = readerPollIntervalMax
				}
			}
			time.Sleep(pollInterval)
		}
	}()
}

func (r *Reader) fin(err error) {
	atomic.StoreInt32(&r.event, int32(EvtReadFin))
	r.eventBox.Set(EvtReadFin, err)
}

// ReadSource reads from the default command when stdin is a terminal, or
// from standard input otherwise. It returns after the source is exhausted,
// having set EvtReadFin with the error from a failed command, or nil.
func (r *Reader) ReadSource() {
	r.startEventPoller()
	var err error
	if util.IsTty(os.Stdin) {
		cmd := os.Getenv(defaultCommandEnv)
		if len(cmd) == 0 {
			cmd = defaultCommand
		}
		err = r.readFromCommand(cmd)
	} else {
		err = r.readFromStdin()
	}
	r.fin(err)
}

func (r *Reader) feed(src io.Reader) {
	delim := byte('\n')
	if r.delimNil {
		delim = '\000'
	}

	slab := make([]byte, readerSlabSize)
	leftover := []byte{}
	var err error
	for {
		n := 0
		scope := slab[:util.Min(len(slab), readerBufferSize)]
		for i := 0; i < 100; i++ {
			n, err = src.Read(scope)
			if n > 0 || err != nil {
				break
			}
		}

		// We're not making any progress after 100 tries. Stop.
		if n == 0 {
			break
		}

		buf := slab[:n]
		slab = slab[n:]

		for len(buf) > 0 {
			i := bytes.IndexByte(buf, delim)
			if i < 0 {
				// Could not find the delimiter in the buffer; keep the
				// remainder until the next read
				leftover = append(leftover, buf...)
				buf = nil
				break
			}
			slice := buf[:i]
			buf = buf[i+1:]
			if delim == '\n' && len(slice) > 0 && slice[len(slice)-1] == '\r' {
				slice = slice[:len(slice)-1]
			}
			if len(leftover) > 0 {
				slice = append(leftover, slice...)
				leftover = []byte{}
			}
			if (err == nil || len(slice) > 0) && r.pusher(slice) {
				atomic.StoreInt32(&r.event, int32(EvtReadNew))
			}
		}

		if err == io.EOF {
			leftover = append(leftover, buf...)
			break
		}

		if len(slab) == 0 {
			slab = make([]byte, readerSlabSize)
		}
	}
	if len(leftover) > 0 && r.pusher(leftover) {
		atomic.StoreInt32(&r.event, int32(EvtReadNew))
	}
}

func (r *Reader) readFromStdin() error {
	r.feed(os.Stdin)
	return nil
}

func (r *Reader) readFromCommand(command string) error {
	cmd := exec.Command("sh", "-c", command)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open pipe to command")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start command: %s", command)
	}
	r.feed(out)
	return errors.Wrapf(cmd.Wait(), "command failed: %s", command)
}
