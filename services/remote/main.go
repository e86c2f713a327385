// Service to send and learn infrared/RF remote control codes.
package remote

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/remote-hub/remotehub/devices/broadlink"
	"github.com/remote-hub/remotehub/pubsub"
	"github.com/remote-hub/remotehub/services"
)

// Service remote
type Service struct {
	remotes map[string]*Remote // by protocol id
	presets PresetStore
}

func (self *Service) ID() string {
	return "remote"
}

func (self *Service) Init() error {
	services.WaitForConfig()
	if services.Stor == nil {
		services.SetupStore()
	}
	self.presets = NewPresetStore(services.Stor)
	self.remotes = map[string]*Remote{}

	conf := services.Config
	for id, node := range conf.Broadlink.Devices {
		dev, err := broadlink.NewDevice(node, conf.Remote.Repeat)
		if err != nil {
			return err
		}
		self.remotes[id] = New(dev, self.presets, busNotifier{},
			conf.Remote.PollInterval(), conf.Remote.LearnTimeout())
	}
	return nil
}

func (self *Service) lookup(device string) (*Remote, bool) {
	id, ok := services.Config.LookupDeviceProtocol(device, "broadlink")
	if !ok {
		return nil, false
	}
	remote, ok := self.remotes[id]
	return remote, ok
}

// preset defaults to the device name, so each device gets its own slot
// group unless the event says otherwise.
func eventPreset(ev *pubsub.Event) string {
	if preset := ev.Preset(); preset != "" {
		return preset
	}
	return ev.Device()
}

// button defaults to the command verb; an explicit button field lets a
// command like "on" map onto a differently named slot.
func eventButton(ev *pubsub.Event) string {
	if button := ev.Button(); button != "" {
		return button
	}
	return ev.Command()
}

func (self *Service) handleCommand(ev *pubsub.Event) {
	remote, ok := self.lookup(ev.Device())
	if !ok {
		return // command not for us
	}
	button := eventButton(ev)
	preset := eventPreset(ev)
	log.Printf("Sending %s to %s", button, ev.Device())
	if err := remote.Send(preset, button); err != nil {
		log.Printf("Error sending %s to %s: %s", button, ev.Device(), err)
		services.SendAlert(fmt.Sprintf("%s: sending '%s' failed: %s", ev.Device(), button, err), "", "", 0)
		return
	}
	ack(ev.Device(), button)
}

func ack(device, command string) {
	fields := pubsub.Fields{
		"device":  device,
		"command": command,
	}
	services.Publisher.Emit(pubsub.NewEvent("ack", fields))
}

func (self *Service) queryLearn(q services.Question) string {
	args := strings.Fields(q.Args)
	if len(args) < 2 {
		return "usage: learn <device> <button> [preset]"
	}
	device, button := args[0], args[1]
	preset := device
	if len(args) > 2 {
		preset = args[2]
	}

	remote, ok := self.lookup(device)
	if !ok {
		return fmt.Sprintf("device %s not found", device)
	}
	code, err := remote.Learn(context.Background(), preset, button)
	if err != nil {
		return fmt.Sprintf("learning '%s' failed: %s", button, err)
	}
	log.Printf("Learned %s/%s (%d bytes encoded)", preset, button, len(code))
	return fmt.Sprintf("learned '%s' for %s", button, preset)
}

func (self *Service) queryCodes(q services.Question) string {
	preset := strings.TrimSpace(q.Args)
	if preset == "" {
		return "usage: codes <preset>"
	}
	buttons, err := self.presets.Buttons(preset)
	if err != nil {
		return fmt.Sprintf("listing %s failed: %s", preset, err)
	}
	if len(buttons) == 0 {
		return fmt.Sprintf("no codes stored for %s", preset)
	}
	sort.Strings(buttons)
	return strings.Join(buttons, ", ")
}

func (self *Service) QueryHandlers() services.QueryHandlers {
	return services.QueryHandlers{
		"learn": services.TextHandler(self.queryLearn),
		"codes": services.TextHandler(self.queryCodes),
		"help":  services.StaticHandler("learn <device> <button> [preset]: learn a code\ncodes <preset>: list learned buttons"),
	}
}

func (self *Service) Run() error {
	for ev := range services.Subscriber.Subscribe(pubsub.Prefix("command")) {
		self.handleCommand(ev)
	}
	return nil
}
