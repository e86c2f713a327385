// Package broadlink adapts Broadlink RM units to the devices.Device
// contract using the mixcode/broadlink protocol library.
package broadlink

import (
	"log"
	"net"
	"os"

	broadlink "github.com/mixcode/broadlink"
	"github.com/pkg/errors"

	"github.com/remote-hub/remotehub/config"
	"github.com/remote-hub/remotehub/devices"
)

// Device is a Broadlink RM unit on the local network.
type Device struct {
	addr   string
	dev    *broadlink.Device
	repeat int
}

var _ devices.Device = (*Device)(nil)

func NewDevice(conf config.BroadlinkNodeConf, repeat int) (*Device, error) {
	mac, err := net.ParseMAC(conf.Mac)
	if err != nil {
		return nil, errors.Wrap(err, "parsing mac address")
	}
	udpAddr, err := net.ResolveUDPAddr("udp", conf.Addr)
	if err != nil {
		return nil, errors.Wrap(err, "parsing device address")
	}
	if repeat < 1 {
		repeat = 1
	}
	dev := &broadlink.Device{
		Type:    conf.Type,
		MACAddr: mac,
		UDPAddr: *udpAddr,
	}
	if conf.Timeout != nil {
		dev.Timeout = conf.Timeout.Duration
	}
	return &Device{addr: conf.Addr, dev: dev, repeat: repeat}, nil
}

func (d *Device) Host() string {
	return d.addr
}

// Auth establishes a control session. The unit expects a 15 byte client
// id and a client name.
func (d *Device) Auth() error {
	hostname, _ := os.Hostname()
	id := make([]byte, 15)
	return errors.Wrapf(d.dev.Auth(id, hostname), "authenticating with %s", d.addr)
}

func (d *Device) SendData(code []byte) error {
	return classify(d.dev.SendIRRemoteCode(code, d.repeat))
}

func (d *Device) EnterLearning() error {
	return classify(d.dev.StartCaptureRemoteControlCode())
}

// CheckData polls for a captured code. The unit answers reads with an
// error status until a button press has been captured, so a response
// error here is the normal "keep polling" case, not a failure.
func (d *Device) CheckData() ([]byte, error) {
	irtype, code, err := d.dev.ReadCapturedRemoteControlCode()
	if err != nil {
		if isTimeout(err) {
			return nil, errors.Wrapf(devices.ErrClosed, "%s: %s", d.addr, err)
		}
		return nil, errors.Wrapf(devices.ErrNoData, "%s: %s", d.addr, err)
	}
	log.Printf("Captured remote code from %s (type %v)", d.addr, irtype)
	return code, nil
}

// classify maps transport failures onto the shared taxonomy. A stale
// session makes the unit drop control packets, so a network timeout is
// reported as a closed connection and recovered by re-authenticating.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isTimeout(err) {
		return errors.Wrap(devices.ErrClosed, err.Error())
	}
	return err
}

func isTimeout(err error) bool {
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
