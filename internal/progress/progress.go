// Package progress carries human-readable status events from long running
// operations (feed ingestion, artwork export) to whatever is displaying them.
//
// Producers take a Func and call Emit; a nil Func discards events:
//
//	report := progress.Func(func(e progress.Event) { fmt.Println(e.Message) })
//	report.Emit(progress.LevelInfo, "fetched %d songs", n)
package progress

import "fmt"

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Event represents a single progress update.
type Event struct {
	Message string
	Level   Level
}

// Func receives progress events.
type Func func(Event)

// Emit formats a message and sends it to f. It is safe to call on a nil Func.
func (f Func) Emit(level Level, format string, args ...any) {
	if f == nil {
		return
	}
	f(Event{Message: fmt.Sprintf(format, args...), Level: level})
}
