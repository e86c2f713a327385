package remote

import "github.com/remote-hub/remotehub/services"

// busNotifier publishes persistent notifications as retained events, for
// frontends and the pushbullet service to pick up.
type busNotifier struct{}

func (busNotifier) Create(id, title, message string) {
	services.SendNotification(id, title, message)
}

func (busNotifier) Dismiss(id string) {
	services.DismissNotification(id)
}
