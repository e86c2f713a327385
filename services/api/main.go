// Package api is a service providing an HTTP REST API to send and learn
// remote control codes.
//
// The endpoints supported are:
//
// http://localhost:8723/presets/{preset} - list the buttons learned for a preset
//
// http://localhost:8723/devices/{device}/send?button=power - send a learned code
//
// http://localhost:8723/devices/{device}/learn?button=power - learn a code (blocks until captured or timed out)
//
// http://localhost:8723/query/{query} - query a service over the bus
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/remote-hub/remotehub/pubsub"
	"github.com/remote-hub/remotehub/services"
)

// Service api
type Service struct {
	router *mux.Router
}

// ID of the service
func (service *Service) ID() string {
	return "api"
}

func errorResponse(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), 500)
}

func jsonResponse(w http.ResponseWriter, obj interface{}) {
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	err := enc.Encode(obj)
	if err != nil {
		errorResponse(w, err)
	}
}

func apiIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/html")
	fmt.Fprintf(w, "<html>remotehub is listening</html>")
}

func query(endpoint string, q string, timeout time.Duration, w http.ResponseWriter) {
	w.Header().Add("Content-Type", "application/json; charset=utf-8")

	ch := services.QueryChannel(strings.TrimSpace(endpoint+" "+q), timeout)

	flusher, _ := w.(http.Flusher)
	for ev := range ch {
		fmt.Fprintf(w, ev.String()+"\r\n")
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func apiQuery(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Path[len("/query/"):]
	q := r.URL.Query().Get("q")
	query(endpoint, q, 500*time.Millisecond, w)
}

func apiPresetButtons(w http.ResponseWriter, r *http.Request) {
	preset := mux.Vars(r)["preset"]
	prefix := "remotehub/presets/" + preset + "/"
	nodes, err := services.Stor.GetRecursive(prefix)
	if err != nil {
		errorResponse(w, err)
		return
	}
	buttons := []string{}
	for _, node := range nodes {
		buttons = append(buttons, strings.TrimPrefix(node.Key, prefix))
	}
	jsonResponse(w, buttons)
}

func apiSend(w http.ResponseWriter, r *http.Request) {
	device := mux.Vars(r)["device"]
	button := r.URL.Query().Get("button")
	if button == "" {
		http.Error(w, "button parameter required", 400)
		return
	}
	ev := pubsub.NewCommand(device, button)
	if preset := r.URL.Query().Get("preset"); preset != "" {
		ev.SetField("preset", preset)
	}
	services.Publisher.Emit(ev)
	jsonResponse(w, map[string]string{"device": device, "button": button, "status": "sent"})
}

// apiLearn blocks until the remote service reports the outcome, so the
// response timeout has to cover the learning window.
func apiLearn(w http.ResponseWriter, r *http.Request) {
	device := mux.Vars(r)["device"]
	button := r.URL.Query().Get("button")
	if button == "" {
		http.Error(w, "button parameter required", 400)
		return
	}
	q := "remote/learn " + device + " " + button
	if preset := r.URL.Query().Get("preset"); preset != "" {
		q += " " + preset
	}
	query(q, "", time.Minute, w)
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", apiIndex)
	router.HandleFunc("/query/{query:.*}", apiQuery)
	router.HandleFunc("/presets/{preset}", apiPresetButtons).Methods("GET")
	router.HandleFunc("/devices/{device}/send", apiSend).Methods("POST")
	router.HandleFunc("/devices/{device}/learn", apiLearn).Methods("POST")
	return router
}

func (service *Service) Init() error {
	services.WaitForConfig()
	if services.Stor == nil {
		services.SetupStore()
	}
	service.router = newRouter()
	return nil
}

// Run the service
func (service *Service) Run() error {
	addr := services.Config.Endpoints.Api
	if addr == "" {
		addr = ":8723"
	}
	return http.ListenAndServe(addr, service.router)
}
