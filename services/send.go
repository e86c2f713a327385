package services

import "github.com/remote-hub/remotehub/pubsub"

func SendAlert(message string, target string, subtopic string, interval int64) {
	fields := pubsub.Fields{
		"message": message,
		"target":  target,
	}
	if subtopic != "" {
		fields["subtopic"] = subtopic
		fields["interval"] = interval
	}
	ev := pubsub.NewEvent("alert", fields)
	Publisher.Emit(ev)
}

func SendQuery(query, source, remote, reply_to string) {
	fields := pubsub.Fields{
		"source":   source,
		"query":    query,
		"remote":   remote,
		"reply_to": reply_to,
	}
	ev := pubsub.NewEvent("query", fields)
	Publisher.Emit(ev)
}

// SendNotification shows a persistent notification. It stays visible on
// connected frontends until dismissed with the same id.
func SendNotification(id, title, message string) {
	fields := pubsub.Fields{
		"id":      id,
		"title":   title,
		"message": message,
		"state":   "created",
	}
	ev := pubsub.NewEvent("notification", fields)
	ev.SetRetained(true)
	Publisher.Emit(ev)
}

// DismissNotification removes a persistent notification by id.
func DismissNotification(id string) {
	fields := pubsub.Fields{
		"id":    id,
		"state": "dismissed",
	}
	ev := pubsub.NewEvent("notification", fields)
	ev.SetRetained(true)
	Publisher.Emit(ev)
}
