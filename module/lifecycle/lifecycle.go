package lifecycle

import (
	"sync"

	"github.com/bastionlabs/bastion-go/module"
)

// LifecycleManager ensures that a component is started and stopped at most
// once, that shutdown only commences after startup has completed, and that
// the Started and Stopped channels reflect these transitions.
type LifecycleManager struct {
	stateTransition   sync.Mutex
	startupCommenced  bool
	shutdownCommenced bool
	started           chan struct{}
	stopped           chan struct{}
}

func NewLifecycleManager() *LifecycleManager {
	lm := &LifecycleManager{
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
	return lm
}

// OnStart will commence startup of the component if neither startup nor
// shutdown has commenced before. The given startup functions run in order in
// a separate goroutine; once all have returned, the Started channel closes.
func (lm *LifecycleManager) OnStart(startupFns ...func()) {
	lm.stateTransition.Lock()
	defer lm.stateTransition.Unlock()
	if lm.startupCommenced || lm.shutdownCommenced {
		return
	}
	lm.startupCommenced = true

	go func() {
		for _, fn := range startupFns {
			fn()
		}
		close(lm.started)
	}()
}

// OnStop will commence shutdown of the component if it has not commenced
// before. If startup has commenced, shutdown waits for startup to complete,
// then runs the given shutdown functions in order and closes the Stopped
// channel. If startup never commenced, the Stopped channel closes right away
// without running any functions, and a subsequent OnStart is a no-op.
func (lm *LifecycleManager) OnStop(shutdownFns ...func()) {
	lm.stateTransition.Lock()
	defer lm.stateTransition.Unlock()
	if lm.shutdownCommenced {
		return
	}
	lm.shutdownCommenced = true

	if !lm.startupCommenced {
		close(lm.stopped)
		return
	}

	go func() {
		<-lm.started
		for _, fn := range shutdownFns {
			fn()
		}
		close(lm.stopped)
	}()
}

// Started returns a channel that closes once startup has completed.
func (lm *LifecycleManager) Started() <-chan struct{} {
	return lm.started
}

// Stopped returns a channel that closes once shutdown has completed.
func (lm *LifecycleManager) Stopped() <-chan struct{} {
	return lm.stopped
}

// AllReady returns a channel that closes once all the given components have
// closed their Ready channels.
func AllReady(components ...module.ReadyDoneAware) <-chan struct{} {
	ready := make(chan struct{})
	var wg sync.WaitGroup

	for _, component := range components {
		wg.Add(1)
		go func(c module.ReadyDoneAware) {
			<-c.Ready()
			wg.Done()
		}(component)
	}

	go func() {
		wg.Wait()
		close(ready)
	}()

	return ready
}

// AllDone returns a channel that closes once all the given components have
// closed their Done channels.
func AllDone(components ...module.ReadyDoneAware) <-chan struct{} {
	done := make(chan struct{})
	var wg sync.WaitGroup

	for _, component := range components {
		wg.Add(1)
		go func(c module.ReadyDoneAware) {
			<-c.Done()
			wg.Done()
		}(component)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	return done
}
