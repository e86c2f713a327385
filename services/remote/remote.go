package remote

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/remote-hub/remotehub/devices"
)

var (
	// ErrCodeNotFound means no code has been learned for the
	// preset/button slot.
	ErrCodeNotFound = errors.New("no code stored")
	// ErrLearnTimeout means no button press was captured before the
	// learning deadline.
	ErrLearnTimeout = errors.New("no code captured within the learning window")
)

const learnNotificationID = "remote.learn"

// Remote drives one remote-control unit: it sends learned codes and
// captures new ones. Send and Learn serialize on the device - the unit
// answers one request at a time.
type Remote struct {
	dev          devices.Device
	presets      PresetStore
	notifier     Notifier
	pollInterval time.Duration
	learnTimeout time.Duration
	requests     sync.Mutex
}

// Notifier shows and removes persistent user notifications.
// Fire-and-forget: failures to display are not reported back.
type Notifier interface {
	Create(id, title, message string)
	Dismiss(id string)
}

func New(dev devices.Device, presets PresetStore, notifier Notifier, pollInterval, learnTimeout time.Duration) *Remote {
	return &Remote{
		dev:          dev,
		presets:      presets,
		notifier:     notifier,
		pollInterval: pollInterval,
		learnTimeout: learnTimeout,
	}
}

// request runs a blocking device operation. If the device reports a
// lapsed session or dropped connection, it re-authenticates once and
// retries the operation once; if re-authentication fails the original
// error is returned. Any other failure is returned as-is.
func (r *Remote) request(op func() ([]byte, error)) ([]byte, error) {
	data, err := op()
	if err == nil || !devices.Recoverable(err) {
		return data, err
	}
	if aerr := r.dev.Auth(); aerr != nil {
		log.Printf("Failed to authenticate to the device at %s: %s", r.dev.Host(), aerr)
		return nil, err
	}
	return op()
}

// Send transmits the code stored for preset/button. The caller is told
// about every failure: a missing code is ErrCodeNotFound, device and
// network failures come back wrapped.
func (r *Remote) Send(preset, button string) error {
	encoded, err := r.presets.Get(preset, button)
	if err != nil {
		return err
	}
	code, err := DecodeCode(encoded)
	if err != nil {
		return errors.Wrapf(err, "invalid code stored for %s/%s", preset, button)
	}

	r.requests.Lock()
	defer r.requests.Unlock()
	_, err = r.request(func() ([]byte, error) {
		return nil, r.dev.SendData(code)
	})
	return errors.Wrapf(err, "sending %s/%s", preset, button)
}

// Learn puts the device into learning mode and polls until a code is
// captured or the learning deadline passes. The captured code is stored
// in the preset/button slot before it is returned. A persistent
// notification prompts for the button press while polling, and is
// dismissed on every exit path.
func (r *Remote) Learn(ctx context.Context, preset, button string) (string, error) {
	r.requests.Lock()
	defer r.requests.Unlock()

	if _, err := r.request(func() ([]byte, error) {
		return nil, r.dev.EnterLearning()
	}); err != nil {
		return "", errors.Wrap(err, "entering learning mode")
	}

	r.notifier.Create(learnNotificationID, "Learn command",
		fmt.Sprintf("Press the %q button on the physical remote", button))
	defer r.notifier.Dismiss(learnNotificationID)

	ctx, cancel := context.WithTimeout(ctx, r.learnTimeout)
	defer cancel()

	var data []byte
	poll := backoff.WithContext(backoff.NewConstantBackOff(r.pollInterval), ctx)
	err := backoff.Retry(func() error {
		var err error
		data, err = r.request(r.dev.CheckData)
		if err != nil && !errors.Is(err, devices.ErrNoData) {
			return backoff.Permanent(err)
		}
		return err
	}, poll)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		return "", ErrLearnTimeout
	default:
		return "", errors.Wrap(err, "checking for captured code")
	}

	encoded := EncodeCode(data)
	if err := r.presets.Set(preset, button, encoded); err != nil {
		return "", errors.Wrapf(err, "storing code for %s/%s", preset, button)
	}
	return encoded, nil
}
