package driver

// Stage is the lifecycle position of one file inside a multi-file scan.
type Stage uint8

const (
	StageQueued Stage = iota
	StageScanning
	StageDone
	StageError
)

// Event reports a stage change for one file.
type Event struct {
	File  string
	Stage Stage
	Err   error
}

// Sink receives scan progress events.
type Sink interface {
	Publish(Event)
}

// ChannelSink forwards events into a channel, typically consumed by the
// progress UI.
type ChannelSink struct{ Ch chan<- Event }

func (s ChannelSink) Publish(ev Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) Publish(Event) {}
