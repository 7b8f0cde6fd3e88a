package broadcast

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Entry struct {
	Time    time.Time              `json:"time"`
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Sink receives every log entry at or above the hook's level.
type Sink interface {
	Publish(e Entry)
}

// Hook forwards logrus entries to a Sink.
type Hook struct {
	sink   Sink
	levels []logrus.Level
}

func NewHook(sink Sink, min logrus.Level) *Hook {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= min {
			levels = append(levels, l)
		}
	}
	return &Hook{sink: sink, levels: levels}
}

func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

func (h *Hook) Fire(entry *logrus.Entry) error {
	var fields map[string]interface{}
	if len(entry.Data) > 0 {
		fields = make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			if err, ok := v.(error); ok {
				v = err.Error()
			}
			fields[k] = v
		}
	}
	h.sink.Publish(Entry{
		Time:    entry.Time.UTC(),
		Level:   entry.Level.String(),
		Message: entry.Message,
		Fields:  fields,
	})
	return nil
}

// RecentLogs keeps the last N entries in memory.
type RecentLogs struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
}

func NewRecentLogs(size int) *RecentLogs {
	if size < 1 {
		size = 1
	}
	return &RecentLogs{entries: make([]Entry, size)}
}

func (r *RecentLogs) Publish(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
}

// Recent returns the retained entries, oldest first.
func (r *RecentLogs) Recent() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}
