package sift

import (
	"time"

	"github.com/sift-dev/sift/src/util"
)

const (
	// Reader
	readerBufferSize       = 64 * 1024
	readerSlabSize         = 128 * 1024
	readerPollIntervalMin  = 10 * time.Millisecond
	readerPollIntervalStep = 5 * time.Millisecond
	readerPollIntervalMax  = 50 * time.Millisecond

	// Initial capacity of the item pool
	itemPoolCapacity = 1024
)

// Reader events
const (
	EvtReadNew util.EventType = iota
	EvtReadFin
	EvtReady
)

const (
	// Command to run when stdin is a terminal and no override is given
	defaultCommand = `find * -type f 2> /dev/null`

	// Environment variable that overrides defaultCommand
	defaultCommandEnv = "SIFT_DEFAULT_COMMAND"
)
