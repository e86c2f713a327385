package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/remote-hub/remotehub/config"
	"github.com/remote-hub/remotehub/pubsub"
	"github.com/remote-hub/remotehub/services"
	"github.com/remote-hub/remotehub/services/api"
	"github.com/remote-hub/remotehub/services/pushbullet"
	"github.com/remote-hub/remotehub/services/remote"
	"github.com/remote-hub/remotehub/util"
)

func registerServices() {
	// register available services
	services.Register(&api.Service{})
	services.Register(&pushbullet.Service{})
	services.Register(&remote.Service{})
}

func usage() {
	fmt.Println("Usage: remotehub COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("   config  [filename...]             Update config (default: ~/.config/remotehub/remotehub.yml)")
	fmt.Println("   run     service...                Run services")
	fmt.Println("   send    device button [key=value] Send a learned code")
	fmt.Println("   query   verb [args]               Query services")
	fmt.Println()
}

func main() {
	services.SetupLogging()
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	ps := flag.Args()[1:]
	switch flag.Arg(0) {
	default:
		usage()
	case "config":
		configCommand(ps)
	case "run":
		run(ps)
	case "send":
		if len(ps) < 2 {
			usage()
			return
		}
		sendCommand(ps)
	case "query":
		if len(ps) < 1 {
			usage()
			return
		}
		queryCommand(ps)
	}
}

// Start builtin services
func run(ss []string) {
	services.Setup("remotehub")
	registerServices()
	services.Launch(ss)
}

func configCommand(filenames []string) {
	if len(filenames) == 0 {
		filenames = []string{config.ConfigPath("remotehub.yml")}
	}

	// concatenate files together
	var data strings.Builder
	for _, filename := range filenames {
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Printf("Error reading %s: %s\n", filename, err)
			return
		}
		data.Write(content)
		data.WriteByte('\n')
	}

	// check it parses before pushing it to every service
	if _, err := config.OpenRaw([]byte(data.String())); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	fields := pubsub.Fields{
		"config": data.String(),
	}
	ev := pubsub.NewEvent("config", fields)
	ev.SetRetained(true) // config messages are retained
	services.Setup("config")
	services.Publisher.Emit(ev)
	ev.Published.Wait()
	services.Shutdown()
	fmt.Printf("Updated config (%d bytes)\n", data.Len())
}

func sendCommand(ps []string) {
	button, fields := util.ParseArgs(ps[1:])
	ev := pubsub.NewCommand(ps[0], button)
	ev.SetFields(fields)
	services.Setup("send")
	services.Publisher.Emit(ev)
	ev.Published.Wait()
	services.Shutdown()
}

func queryCommand(ps []string) {
	services.Setup("query")
	// learning blocks until captured or timed out, so be generous
	events := services.Query(strings.Join(ps, " "), 65*time.Second)
	for _, ev := range events {
		fmt.Printf("%s: %s\n", ev.Source(), ev.StringField("message"))
	}
	services.Shutdown()
}
