package models

import "github.com/vkotlyar/homesense/internal/common"

// SensorKind selects which of the parallel sensor tables an operation
// targets. The set is closed; caller input never reaches SQL directly.
type SensorKind string

const (
	KindTemperature SensorKind = "temperature"
	KindHumidity    SensorKind = "humidity"
	KindLight       SensorKind = "light"
)

// ParseSensorKind validates a caller-supplied kind. An unrecognized kind is
// an unknown resource (ErrorNotFound), matching the 404 policy of /api/{kind}.
func ParseSensorKind(s string) (SensorKind, error) {
	switch SensorKind(s) {
	case KindTemperature, KindHumidity, KindLight:
		return SensorKind(s), nil
	}
	return "", common.ErrorNotFound
}
