package mqtt

import (
	"log"

	MQTT "github.com/eclipse/paho.mqtt.golang"

	"github.com/remote-hub/remotehub/pubsub"
)

// Publisher for mqtt
type Publisher struct {
	broker string
	client MQTT.Client
}

// ID of Publisher
func (pub *Publisher) ID() string {
	return "mqtt: " + pub.broker
}

// Emit an event
func (pub *Publisher) Emit(ev *pubsub.Event) {
	topic := TopicRoot + ev.Topic
	token := pub.client.Publish(topic, 1, ev.Retained, ev.Bytes())
	ev.Published.Add(1)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.Println("Error publishing:", token.Error())
		}
		ev.Published.Done()
	}()
}

func (pub *Publisher) Close() {
	pub.client.Disconnect(250)
}
