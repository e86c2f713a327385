package util

import (
	"net"
	"os"
)

const (
	SdNotifyReady    = "READY=1"
	SdNotifyWatchdog = "WATCHDOG=1"
)

// SdNotify sends a message to the systemd notify socket, if configured.
func SdNotify(unsetEnvironment bool, state string) (bool, error) {
	socketAddr := &net.UnixAddr{
		Name: os.Getenv("NOTIFY_SOCKET"),
		Net:  "unixgram",
	}
	// NOTIFY_SOCKET not set - not running under systemd
	if socketAddr.Name == "" {
		return false, nil
	}
	if unsetEnvironment {
		os.Unsetenv("NOTIFY_SOCKET")
	}

	conn, err := net.DialUnix(socketAddr.Net, nil, socketAddr)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	if _, err = conn.Write([]byte(state)); err != nil {
		return false, err
	}
	return true, nil
}
