package events

import "github.com/atomicstack/mineral/internal/logging"

type DispatchTracer struct{}

type ReducerTracer struct{}

type RenderTracer struct{}

var (
	Dispatch = DispatchTracer{}
	Reducer  = ReducerTracer{}
	Render   = RenderTracer{}
)

func (DispatchTracer) Key(key, popup, page, action string) {
	logging.Trace("dispatch.key", map[string]interface{}{
		"key":    key,
		"popup":  popup,
		"page":   page,
		"action": action,
	})
}

func (ReducerTracer) Action(action string, changed bool) {
	logging.Trace("reducer.action", map[string]interface{}{"action": action, "changed": changed})
}

func (ReducerTracer) Cursor(list string, cursor int) {
	logging.Trace("reducer.cursor", map[string]interface{}{"list": list, "cursor": cursor})
}

func (ReducerTracer) Popup(popup string, queued int) {
	logging.Trace("reducer.popup", map[string]interface{}{"popup": popup, "queued": queued})
}

func (RenderTracer) Frame(count int, lines int) {
	logging.Trace("render.frame", map[string]interface{}{"count": count, "lines": lines})
}

func (RenderTracer) Resize(cols, rows int) {
	logging.Trace("render.resize", map[string]interface{}{"cols": cols, "rows": rows})
}
