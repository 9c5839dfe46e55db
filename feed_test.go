package courbe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedNotifiesInRegistrationOrder(t *testing.T) {

	feed := &Feed{}

	var calls []string
	feed.Subscribe(func() { calls = append(calls, "first") })
	feed.Subscribe(func() { calls = append(calls, "second") })
	feed.Subscribe(func() { calls = append(calls, "third") })

	feed.notify()
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestFeedUnsubscribe(t *testing.T) {

	feed := &Feed{}

	var calls []string
	feed.Subscribe(func() { calls = append(calls, "first") })
	sub := feed.Subscribe(func() { calls = append(calls, "second") })
	feed.Subscribe(func() { calls = append(calls, "third") })

	feed.Unsubscribe(sub)
	feed.notify()
	assert.Equal(t, []string{"first", "third"}, calls)

	// unknown handle is ignored
	feed.Unsubscribe(Sub{id: 99})
	feed.notify()
	assert.Len(t, calls, 4)
}

func TestFeedEmpty(t *testing.T) {

	feed := &Feed{}
	assert.NotPanics(t, func() { feed.notify() })
}
