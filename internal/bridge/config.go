// Package bridge forwards sensor readings from an MQTT broker into the
// server's raw ingest endpoint.
package bridge

import (
	"flag"
	"os"
	"time"

	"github.com/vkotlyar/homesense/internal/flagx"
)

// Config holds runtime settings for the bridge component.
//
// Fields:
//   - BrokerURL: MQTT broker to connect to.
//   - BaseTopic: subscription root; readings arrive on <BaseTopic>/readings.
//   - IngestURL: the server's raw ingest endpoint.
//   - ForwardTimeout: per-request HTTP timeout.
//   - ThrottleDelay: pause after each forwarded message. The ingest side is
//     a small database; a misbehaving sensor must not flood it.
type Config struct {
	BrokerURL      string
	BaseTopic      string
	IngestURL      string
	ForwardTimeout time.Duration
	ThrottleDelay  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.BrokerURL = "tcp://broker.hivemq.com:1883"
	c.BaseTopic = "homesense/sensors"
	c.IngestURL = "http://localhost:6543/add_temp"
	c.ForwardTimeout = 5 * time.Second
	c.ThrottleDelay = 5 * time.Second
}

// LoadConfig builds a Config from defaults and command-line flags.
//
// Supported flags:
//
//	-b string   MQTT broker URL
//	-t string   base topic
//	-i string   ingest endpoint URL
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}

func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-t", "-i"})

	fs := flag.NewFlagSet("bridge", flag.ContinueOnError)

	fs.StringVar(&config.BrokerURL, "b", config.BrokerURL, "MQTT broker URL")
	fs.StringVar(&config.BaseTopic, "t", config.BaseTopic, "base MQTT topic")
	fs.StringVar(&config.IngestURL, "i", config.IngestURL, "ingest endpoint URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
