package courbe

// Feed is a minimal synchronous observable, embedded by LabelConfig and
// ChartValue. Handlers run in registration order after a state change
// has been applied. Not safe for concurrent use; all mutation is
// expected on the bubbletea update loop.
type Feed struct {
	handlers []handler
	lastId   int
}

type handler struct {
	id int
	fn func()
}

// Sub identifies a subscription for later removal.
type Sub struct {
	id int
}

// Subscribe registers fn to run on every change notification.
func (feed *Feed) Subscribe(fn func()) Sub {

	feed.lastId++
	feed.handlers = append(feed.handlers, handler{id: feed.lastId, fn: fn})

	return Sub{id: feed.lastId}
}

// Unsubscribe removes a subscription; unknown handles are ignored.
func (feed *Feed) Unsubscribe(sub Sub) {

	for i, hdl := range feed.handlers {
		if hdl.id == sub.id {
			feed.handlers = append(feed.handlers[:i], feed.handlers[i+1:]...)
			return
		}
	}
}

// notify runs all handlers in registration order.
func (feed *Feed) notify() {

	for _, hdl := range feed.handlers {
		hdl.fn()
	}
}
