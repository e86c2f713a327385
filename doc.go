// Remotehub teaches your infrared/RF remote controls to a message bus.
//
// Features
//
// - Send previously learned remote control codes to Broadlink RM units
//
// - Learning mode: capture a code from a physical button press
//
// - Presets: named groups of button-to-code mappings per device profile
//
// - Distributed message system (MQTT, run inputs and outputs over a network)
//
// - REST API for sending and learning codes
//
// - Pushbullet notifications
//
// - Lightweight, small memory footprint (runs on the Raspberry Pi)
package remotehub
