package models

import "time"

// TimestampLayout is the wire format for reading timestamps. Values are
// naive local time; the system has no timezone-aware semantics.
const TimestampLayout = "2006-01-02 15:04:05"

// Reading is one sensor measurement stored in one of the per-kind tables.
type Reading struct {
	ID        int64
	Value     float64
	Unit      string
	Timestamp time.Time
	DeviceID  string
}

// RawTemperature is a device-keyed measurement ingested without a session,
// fed by the MQTT bridge. It is deliberately kept separate from the
// authenticated pipeline: merging the two would grant unauthenticated
// writes access to user-owned data.
type RawTemperature struct {
	ID         int64
	Value      float64
	Unit       string
	MACAddress string
}
