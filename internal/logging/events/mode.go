package events

import "github.com/atomicstack/tmux-popup-launcher/internal/logging"

type ModeTracer struct{}

var Mode = ModeTracer{}

func (ModeTracer) Enter(mode, text string) {
	logging.Trace("mode.enter", map[string]interface{}{"mode": mode, "text": text})
}

func (ModeTracer) Exit(mode, text string) {
	logging.Trace("mode.exit", map[string]interface{}{"mode": mode, "text": text})
}

func (ModeTracer) Input(mode, text string, items int) {
	logging.Trace("mode.input", map[string]interface{}{"mode": mode, "text": text, "items": items})
}

func (ModeTracer) Execute(mode string, index int, ok bool) {
	logging.Trace("mode.execute", map[string]interface{}{"mode": mode, "index": index, "ok": ok})
}

func (ModeTracer) Dismiss(mode string) {
	logging.Trace("mode.dismiss", map[string]interface{}{"mode": mode})
}

func (ModeTracer) Error(mode string, err error) {
	if err == nil {
		return
	}
	logging.Trace("mode.error", map[string]interface{}{"mode": mode, "error": err.Error()})
}
