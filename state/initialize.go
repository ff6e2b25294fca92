package state

import (
	"time"

	"l2s/common"
	"l2s/utils/proc"
)

// newLocalEnv creates a new LocalEnv instance with default values, actual
// values come from configuration and command line later.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Runner: proc.Exec{},
		Syntax: common.TargetSyntaxScss,
	}
}
