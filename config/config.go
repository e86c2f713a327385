package config

import (
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type DeviceConf struct {
	Id       string
	Name     string
	Type     string
	Group    string
	Location string
	Caps     []string
	Cap      map[string]bool `yaml:"-"`
}

type EndpointsConf struct {
	Mqtt struct {
		Broker string
	}
	Api   string
	Redis string
}

type Duration struct {
	Duration time.Duration
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	val, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	d.Duration = val
	return nil
}

type BroadlinkNodeConf struct {
	Mac     string
	Addr    string
	Type    uint16
	Timeout *Duration
}

type BroadlinkConf struct {
	Devices map[string]BroadlinkNodeConf
}

type RemoteConf struct {
	Poll_Interval *Duration
	Learn_Timeout *Duration
	Repeat        int
}

// PollInterval between learning mode polls (default 1s).
func (c RemoteConf) PollInterval() time.Duration {
	if c.Poll_Interval != nil {
		return c.Poll_Interval.Duration
	}
	return time.Second
}

// LearnTimeout is the deadline for capturing a code (default 30s).
func (c RemoteConf) LearnTimeout() time.Duration {
	if c.Learn_Timeout != nil {
		return c.Learn_Timeout.Duration
	}
	return 30 * time.Second
}

type PushbulletConf struct {
	Token string
}

// Configuration structure
type Config struct {
	// yaml fields
	Devices    map[string]DeviceConf
	Protocols  map[string]map[string]string
	Endpoints  EndpointsConf
	Broadlink  BroadlinkConf
	Remote     RemoteConf
	Pushbullet PushbulletConf
}

// Open configuration from []byte.
func OpenRaw(data []byte) (*Config, error) {
	self := &Config{}
	err := yaml.Unmarshal(data, self)
	if err != nil {
		return nil, err
	}

	for id, device := range self.Devices {
		device.Id = id
		if len(device.Caps) == 0 {
			major := strings.Split(id, ".")[0]
			device.Caps = []string{major}
		}
		device.Type = device.Caps[0]
		device.Cap = map[string]bool{}
		for _, c := range device.Caps {
			device.Cap[c] = true
		}
		self.Devices[id] = device
	}

	return self, nil
}

// LookupDeviceProtocol finds the protocol identifier for a device name.
func (self *Config) LookupDeviceProtocol(device string, protocol string) (string, bool) {
	for id, name := range self.Protocols[protocol] {
		if name == device {
			return id, true
		}
	}
	return "", false
}

// LookupSource finds the device name for a protocol.id source.
func (self *Config) LookupSource(source string) (string, bool) {
	ps := strings.SplitN(source, ".", 2)
	if len(ps) != 2 {
		return "", false
	}
	device, ok := self.Protocols[ps[0]][ps[1]]
	return device, ok
}

// helpers

// Resolve a configuration file under .config/remotehub
func ConfigPath(p string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = path.Join(os.Getenv("HOME"), ".config")
	}
	return path.Join(config, "remotehub", p)
}
