// Service to push alerts and notifications as pushbullet messages.
package pushbullet

import (
	"log"

	"github.com/mitsuse/pushbullet-go"
	"github.com/mitsuse/pushbullet-go/requests"

	"github.com/remote-hub/remotehub/pubsub"
	"github.com/remote-hub/remotehub/services"
)

var pb *pushbullet.Pushbullet

func sendNote(title, message string) {
	log.Printf("Sending pushbullet note: %s", message)
	n := requests.NewNote()
	n.Title = title
	n.Body = message

	if _, err := pb.PostPushesNote(n); err != nil {
		log.Printf("Pushbullet error: %s", err)
	}
}

func handleAlert(ev *pubsub.Event) {
	if ev.Target() != "" && ev.Target() != "pushbullet" {
		return
	}
	if message, ok := ev.Fields["message"].(string); ok {
		sendNote("Remotehub", message)
	}
}

// Persistent notifications can't be dismissed once pushed, so only the
// created state is forwarded.
func handleNotification(ev *pubsub.Event) {
	if ev.State() != "created" {
		return
	}
	title := ev.StringField("title")
	if title == "" {
		title = "Remotehub"
	}
	sendNote(title, ev.StringField("message"))
}

// Service pushbullet
type Service struct{}

func (self *Service) ID() string {
	return "pushbullet"
}

func (self *Service) Run() error {
	pb = pushbullet.New(services.Config.Pushbullet.Token)

	events := services.Subscriber.Subscribe(pubsub.Prefix("alert"), pubsub.Prefix("notification"))
	for ev := range events {
		switch ev.Topic {
		case "alert":
			handleAlert(ev)
		case "notification":
			handleNotification(ev)
		}
	}
	return nil
}
