package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remote-hub/remotehub/pubsub/dummy"
)

func TestNotificationLifecycle(t *testing.T) {
	em := &dummy.Publisher{}
	Publisher = em

	SendNotification("remote.learn", "Learn command", "Press the button")
	DismissNotification("remote.learn")

	if assert.Len(t, em.Events, 2) {
		created := em.Events[0]
		assert.Equal(t, "notification", created.Topic)
		assert.Equal(t, "remote.learn", created.StringField("id"))
		assert.Equal(t, "created", created.State())
		assert.True(t, created.Retained)

		dismissed := em.Events[1]
		assert.Equal(t, "notification", dismissed.Topic)
		assert.Equal(t, "remote.learn", dismissed.StringField("id"))
		assert.Equal(t, "dismissed", dismissed.State())
	}
}

func TestSendAlert(t *testing.T) {
	em := &dummy.Publisher{}
	Publisher = em

	SendAlert("tv.living: sending 'power' failed", "pushbullet", "", 0)
	if assert.Len(t, em.Events, 1) {
		assert.Equal(t, "alert", em.Events[0].Topic)
		assert.Equal(t, "pushbullet", em.Events[0].Target())
	}
}
