package lifecycle

import (
	"time"

	"github.com/krew-solutions/dispatch-go/dispatch/signals"
)

// Signals bundles the built-in signals a process emits around units of work
// and entity saves. All of them dispatch robustly: a misbehaving subscriber
// must never block the framework path that fired it.
type Signals struct {
	ProcessingStarted  *signals.SignalImp
	ProcessingFinished *signals.SignalImp
	PreSave            *signals.SignalImp
	PostSave           *signals.SignalImp
}

func New(registry *signals.Registry) *Signals {
	return &Signals{
		ProcessingStarted:  registry.Signal(ProcessingStartedSignal),
		ProcessingFinished: registry.Signal(ProcessingFinishedSignal),
		PreSave:            registry.Signal(PreSaveSignal),
		PostSave:           registry.Signal(PostSaveSignal),
	}
}

// Track emits ProcessingStarted, runs fn, emits ProcessingFinished, and
// returns fn's error unchanged. Payloads are only built when someone listens.
func (l *Signals) Track(sender any, fn func() error) error {
	started := time.Now()
	if l.ProcessingStarted.HasListeners(sender) {
		l.ProcessingStarted.SendRobust(sender, signals.Payload{TimeStartKey: started})
	}
	err := fn()
	if l.ProcessingFinished.HasListeners(sender) {
		payload := signals.Payload{
			TimeStartKey: started,
			ElapsedKey:   time.Since(started),
		}
		if err != nil {
			payload[ErrKey] = err
		}
		l.ProcessingFinished.SendRobust(sender, payload)
	}
	return err
}

// NotifySaving announces that sender is about to be saved.
func (l *Signals) NotifySaving(sender any) signals.Responses {
	if !l.PreSave.HasListeners(sender) {
		return nil
	}
	return l.PreSave.SendRobust(sender, signals.Payload{})
}

// NotifySaved announces that sender was saved; created distinguishes a first
// save from an update.
func (l *Signals) NotifySaved(sender any, created bool) signals.Responses {
	if !l.PostSave.HasListeners(sender) {
		return nil
	}
	return l.PostSave.SendRobust(sender, signals.Payload{CreatedKey: created})
}
