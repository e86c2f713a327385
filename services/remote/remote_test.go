package remote

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/remote-hub/remotehub/devices"
	"github.com/remote-hub/remotehub/services"
)

type checkResult struct {
	data []byte
	err  error
}

// fakeDevice scripts device behaviour per operation.
type fakeDevice struct {
	authErr    error
	sendErrs   []error
	enterErrs  []error
	checks     []checkResult
	sent       [][]byte
	authCalls  int
	sendCalls  int
	enterCalls int
	checkCalls int
}

func (d *fakeDevice) Host() string {
	return "192.168.0.60:80"
}

func (d *fakeDevice) Auth() error {
	d.authCalls++
	return d.authErr
}

func (d *fakeDevice) SendData(code []byte) error {
	d.sendCalls++
	if len(d.sendErrs) > 0 {
		err := d.sendErrs[0]
		d.sendErrs = d.sendErrs[1:]
		if err != nil {
			return err
		}
	}
	d.sent = append(d.sent, code)
	return nil
}

func (d *fakeDevice) EnterLearning() error {
	d.enterCalls++
	if len(d.enterErrs) > 0 {
		err := d.enterErrs[0]
		d.enterErrs = d.enterErrs[1:]
		return err
	}
	return nil
}

func (d *fakeDevice) CheckData() ([]byte, error) {
	d.checkCalls++
	if len(d.checks) == 0 {
		return nil, devices.ErrNoData
	}
	result := d.checks[0]
	d.checks = d.checks[1:]
	return result.data, result.err
}

type fakeNotifier struct {
	created   []string
	dismissed []string
}

func (n *fakeNotifier) Create(id, title, message string) {
	n.created = append(n.created, id)
}

func (n *fakeNotifier) Dismiss(id string) {
	n.dismissed = append(n.dismissed, id)
}

func newTestRemote(dev *fakeDevice) (*Remote, PresetStore, *fakeNotifier) {
	presets := NewPresetStore(services.NewMockStore())
	notifier := &fakeNotifier{}
	remote := New(dev, presets, notifier, time.Millisecond, 50*time.Millisecond)
	return remote, presets, notifier
}

func TestSendMissingCode(t *testing.T) {
	dev := &fakeDevice{}
	remote, _, _ := newTestRemote(dev)

	err := remote.Send("tv.living", "power")
	assert.True(t, errors.Is(err, ErrCodeNotFound))
	assert.Equal(t, 0, dev.sendCalls)
	assert.Equal(t, 0, dev.authCalls)
}

func TestSendDispatchesOnce(t *testing.T) {
	dev := &fakeDevice{}
	remote, presets, _ := newTestRemote(dev)
	code := []byte{0x26, 0x00, 0x18, 0x01}
	assert.NoError(t, presets.Set("tv.living", "power", EncodeCode(code)))

	err := remote.Send("tv.living", "power")
	assert.NoError(t, err)
	assert.Equal(t, 1, dev.sendCalls)
	assert.Equal(t, [][]byte{code}, dev.sent)
}

func TestSendInvalidCode(t *testing.T) {
	dev := &fakeDevice{}
	remote, presets, _ := newTestRemote(dev)
	assert.NoError(t, presets.Set("tv.living", "power", "not!base64!"))

	err := remote.Send("tv.living", "power")
	assert.Error(t, err)
	assert.Equal(t, 0, dev.sendCalls)
}

func TestSendReauthenticatesOnce(t *testing.T) {
	dev := &fakeDevice{
		sendErrs: []error{errors.Wrap(devices.ErrNotAuthorized, "session lapsed")},
	}
	remote, presets, _ := newTestRemote(dev)
	code := []byte{0x26, 0x00}
	assert.NoError(t, presets.Set("tv.living", "power", EncodeCode(code)))

	err := remote.Send("tv.living", "power")
	assert.NoError(t, err)
	assert.Equal(t, 1, dev.authCalls)
	assert.Equal(t, 2, dev.sendCalls)
	assert.Equal(t, [][]byte{code}, dev.sent)
}

func TestSendReauthFailurePropagatesOriginal(t *testing.T) {
	dev := &fakeDevice{
		sendErrs: []error{errors.Wrap(devices.ErrNotAuthorized, "session lapsed")},
		authErr:  errors.New("device offline"),
	}
	remote, presets, _ := newTestRemote(dev)
	assert.NoError(t, presets.Set("tv.living", "power", EncodeCode([]byte{1})))

	err := remote.Send("tv.living", "power")
	assert.True(t, errors.Is(err, devices.ErrNotAuthorized))
	assert.Equal(t, 1, dev.authCalls)
	assert.Equal(t, 1, dev.sendCalls)
}

func TestSendOtherFailureNoRetry(t *testing.T) {
	dev := &fakeDevice{
		sendErrs: []error{errors.New("bad packet")},
	}
	remote, presets, _ := newTestRemote(dev)
	assert.NoError(t, presets.Set("tv.living", "power", EncodeCode([]byte{1})))

	err := remote.Send("tv.living", "power")
	assert.Error(t, err)
	assert.Equal(t, 0, dev.authCalls)
	assert.Equal(t, 1, dev.sendCalls)
}

func TestLearnCapturesCode(t *testing.T) {
	captured := []byte{0x26, 0x00, 0x4a, 0x02}
	dev := &fakeDevice{
		checks: []checkResult{
			{nil, devices.ErrNoData},
			{nil, devices.ErrNoData},
			{nil, devices.ErrNoData},
			{nil, devices.ErrNoData},
			{captured, nil},
		},
	}
	remote, presets, notifier := newTestRemote(dev)

	code, err := remote.Learn(context.Background(), "tv.living", "power")
	assert.NoError(t, err)
	assert.Equal(t, EncodeCode(captured), code)
	assert.Equal(t, 5, dev.checkCalls)

	// code written into the preset slot before returning
	stored, err := presets.Get("tv.living", "power")
	assert.NoError(t, err)
	assert.Equal(t, code, stored)

	assert.Equal(t, []string{learnNotificationID}, notifier.created)
	assert.Equal(t, []string{learnNotificationID}, notifier.dismissed)
}

func TestLearnTimeout(t *testing.T) {
	dev := &fakeDevice{} // never returns data
	remote, presets, notifier := newTestRemote(dev)

	_, err := remote.Learn(context.Background(), "tv.living", "power")
	assert.True(t, errors.Is(err, ErrLearnTimeout))
	assert.True(t, dev.checkCalls > 1)

	_, err = presets.Get("tv.living", "power")
	assert.True(t, errors.Is(err, ErrCodeNotFound))

	// notification dismissed exactly once
	assert.Equal(t, []string{learnNotificationID}, notifier.created)
	assert.Equal(t, []string{learnNotificationID}, notifier.dismissed)
}

func TestLearnEnterFailureNoNotification(t *testing.T) {
	dev := &fakeDevice{
		enterErrs: []error{errors.New("device offline")},
	}
	remote, _, notifier := newTestRemote(dev)

	_, err := remote.Learn(context.Background(), "tv.living", "power")
	assert.Error(t, err)
	assert.Equal(t, 0, dev.checkCalls)
	assert.Empty(t, notifier.created)
	assert.Empty(t, notifier.dismissed)
}

func TestLearnEnterReauthenticates(t *testing.T) {
	dev := &fakeDevice{
		enterErrs: []error{errors.Wrap(devices.ErrClosed, "connection reset")},
		checks:    []checkResult{{[]byte{1, 2}, nil}},
	}
	remote, _, _ := newTestRemote(dev)

	code, err := remote.Learn(context.Background(), "tv.living", "power")
	assert.NoError(t, err)
	assert.Equal(t, EncodeCode([]byte{1, 2}), code)
	assert.Equal(t, 1, dev.authCalls)
	assert.Equal(t, 2, dev.enterCalls)
}

func TestLearnFatalPollFailure(t *testing.T) {
	dev := &fakeDevice{
		checks: []checkResult{
			{nil, devices.ErrNoData},
			{nil, errors.New("short read")},
		},
	}
	remote, _, notifier := newTestRemote(dev)

	_, err := remote.Learn(context.Background(), "tv.living", "power")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrLearnTimeout))
	assert.Equal(t, 2, dev.checkCalls)
	assert.Equal(t, []string{learnNotificationID}, notifier.dismissed)
}
