package server

import (
	"log"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/shreya-bani/AI-Intake-Assist/session"
)

// Janitor prunes idle sessions on a cron schedule. The store itself never
// evicts; expiry is purely this collaborator's policy.
type Janitor struct {
	store   session.Store
	expr    *cronexpr.Expression
	maxIdle time.Duration
	stop    chan struct{}
	logger  *log.Logger
}

// NewJanitor panics on an invalid cron spec; config validation catches that
// earlier at startup.
func NewJanitor(store session.Store, spec string, maxIdle time.Duration) *Janitor {
	return &Janitor{
		store:   store,
		expr:    cronexpr.MustParse(spec),
		maxIdle: maxIdle,
		stop:    make(chan struct{}),
		logger:  log.New(log.Writer(), "[JANITOR] ", log.LstdFlags),
	}
}

func (j *Janitor) Start() {
	go func() {
		for {
			timer := time.NewTimer(time.Until(j.expr.Next(time.Now())))
			select {
			case <-j.stop:
				timer.Stop()
				return
			case <-timer.C:
				if n := j.store.PruneIdle(j.maxIdle); n > 0 {
					j.logger.Printf("pruned %d idle session(s)", n)
				}
			}
		}
	}()
}

func (j *Janitor) Shutdown() {
	close(j.stop)
}
