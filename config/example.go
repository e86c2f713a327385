package config

var exampleYaml = `
devices:
  tv.living:
    name: Living room TV
    caps: [remote]
  amp.living:
    name: Living room amplifier
    caps: [remote]
  light.kitchen:
    name: Kitchen light
protocols:
  broadlink:
    34:ea:34:58:9e:15: tv.living
    34:ea:34:58:9e:16: amp.living
endpoints:
  mqtt:
    broker: tcp://127.0.0.1:1883
  api: :8723
  redis: 127.0.0.1:6379
broadlink:
  devices:
    34:ea:34:58:9e:15:
      mac: 34:ea:34:58:9e:15
      addr: 192.168.0.60:80
      type: 0x2712
      timeout: 5s
remote:
  poll_interval: 1s
  learn_timeout: 30s
  repeat: 1
pushbullet:
  token: secret
`

// ExampleConfig for tests.
var ExampleConfig *Config

func init() {
	var err error
	ExampleConfig, err = OpenRaw([]byte(exampleYaml))
	if err != nil {
		panic(err)
	}
}
