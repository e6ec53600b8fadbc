package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/vkotlyar/homesense/internal/logging"
)

// sensorMessage is the payload published by the sensors.
type sensorMessage struct {
	Temperature *float64 `json:"temperature"`
	MACAddress  string   `json:"mac_address"`
}

// ingestRequest is the body posted to the server's raw ingest endpoint.
type ingestRequest struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	MACAddress string  `json:"mac_address"`
}

// Forwarder subscribes to the sensor topic and relays each reading to the
// server over HTTP. Malformed payloads are logged and dropped; the broker
// sees every message acknowledged either way.
type Forwarder struct {
	config *Config
	logger logging.Logger
	httpc  *http.Client
}

// NewForwarder constructs a Forwarder.
func NewForwarder(cfg *Config, logger logging.Logger) *Forwarder {
	return &Forwarder{
		config: cfg,
		logger: logger.With("module", "bridge"),
		httpc:  &http.Client{Timeout: cfg.ForwardTimeout},
	}
}

// readingsTopic is where sensors publish; everything else under the base
// topic is ignored.
func (f *Forwarder) readingsTopic() string {
	return f.config.BaseTopic + "/readings"
}

// handleMessage processes one MQTT message, then throttles.
func (f *Forwarder) handleMessage(ctx context.Context, topic string, payload []byte) {
	if topic != f.readingsTopic() {
		return
	}

	var msg sensorMessage
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Temperature == nil || msg.MACAddress == "" {
		f.logger.Warn(ctx, "dropping malformed sensor message", "topic", topic, "payload", string(payload))
		return
	}

	if err := f.forward(ctx, &msg); err != nil {
		f.logger.Error(ctx, "error forwarding reading", "mac", msg.MACAddress, "error", err.Error())
		return
	}

	f.logger.Info(ctx, "forwarded reading", "mac", msg.MACAddress, "value", *msg.Temperature)

	time.Sleep(f.config.ThrottleDelay)
}

func (f *Forwarder) forward(ctx context.Context, msg *sensorMessage) error {
	body, err := json.Marshal(ingestRequest{
		Value:      *msg.Temperature,
		Unit:       "celsius",
		MACAddress: msg.MACAddress,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.config.IngestURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("ingest returned status %d", resp.StatusCode)
	}
	return nil
}

// Run connects to the broker, subscribes, and blocks until the context is
// canceled.
func (f *Forwarder) Run(ctx context.Context) error {

	opts := mqtt.NewClientOptions().
		AddBroker(f.config.BrokerURL).
		SetClientID("homesense-bridge").
		SetAutoReconnect(true)

	opts.SetOnConnectHandler(func(c mqtt.Client) {
		f.logger.Info(ctx, "Connected to broker", "broker", f.config.BrokerURL)
		token := c.Subscribe(f.config.BaseTopic+"/#", 0, func(_ mqtt.Client, m mqtt.Message) {
			f.handleMessage(ctx, m.Topic(), m.Payload())
		})
		token.Wait()
		if err := token.Error(); err != nil {
			f.logger.Error(ctx, "subscribe error", "error", err.Error())
		}
	})

	client := mqtt.NewClient(opts)

	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("broker connect error: %w", err)
	}

	f.logger.Info(ctx, "Bridge running", "topic", f.readingsTopic(), "ingest", f.config.IngestURL)

	<-ctx.Done()

	f.logger.Info(ctx, "Stopping bridge...")
	client.Disconnect(250)

	return nil
}
