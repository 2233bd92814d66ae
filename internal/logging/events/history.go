package events

import "github.com/atomicstack/tmux-popup-launcher/internal/logging"

type HistoryTracer struct{}

var History = HistoryTracer{}

func (HistoryTracer) Load(read, kept int) {
	logging.Trace("history.load", map[string]interface{}{"read": read, "kept": kept})
}

func (HistoryTracer) Add(id, query, engine string) {
	logging.Trace("history.add", map[string]interface{}{"id": id, "query": query, "engine": engine})
}

func (HistoryTracer) Evict(count int) {
	logging.Trace("history.evict", map[string]interface{}{"count": count})
}

func (HistoryTracer) Remove(id string) {
	logging.Trace("history.remove", map[string]interface{}{"id": id})
}

func (HistoryTracer) Clear() {
	logging.Trace("history.clear", nil)
}

func (HistoryTracer) SaveError(err error) {
	if err == nil {
		return
	}
	logging.Trace("history.save.error", map[string]interface{}{"error": err.Error()})
}
