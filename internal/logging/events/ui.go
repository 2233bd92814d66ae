package events

import "github.com/atomicstack/tmux-popup-launcher/internal/logging"

type UITracer struct{}

type PromptTracer struct{}

type SuggestTracer struct{}

type BackendTracer struct{}

var (
	UI      = UITracer{}
	Prompt  = PromptTracer{}
	Suggest = SuggestTracer{}
	Backend = BackendTracer{}
)

func (UITracer) Select(mode string, index int) {
	logging.Trace("ui.select", map[string]interface{}{"mode": mode, "index": index})
}

func (UITracer) Activate(mode string, index int) {
	logging.Trace("ui.activate", map[string]interface{}{"mode": mode, "index": index})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}

func (PromptTracer) Cleared() {
	logging.Trace("prompt.clear", nil)
}

func (PromptTracer) WordBackspace(text string) {
	logging.Trace("prompt.word-backspace", map[string]interface{}{"text": text})
}

func (PromptTracer) Cursor(pos int) {
	logging.Trace("prompt.cursor", map[string]interface{}{"cursor": pos})
}

func (PromptTracer) CursorWord(pos int) {
	logging.Trace("prompt.cursor-word", map[string]interface{}{"cursor": pos})
}

func (PromptTracer) Append(text string) {
	logging.Trace("prompt.append", map[string]interface{}{"text": text})
}

func (PromptTracer) Backspace(text string) {
	logging.Trace("prompt.backspace", map[string]interface{}{"text": text})
}

func (SuggestTracer) Show(input string, count int) {
	logging.Trace("suggest.show", map[string]interface{}{"input": input, "count": count})
}

func (SuggestTracer) Apply(trigger string) {
	logging.Trace("suggest.apply", map[string]interface{}{"trigger": trigger})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
