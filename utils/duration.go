package utils

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Duration is a time.Duration read as "150ms"-style text from both JSON and
// the environment. Bare JSON numbers are still taken as nanoseconds.
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON writes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a nanosecond count
func (d *Duration) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		return d.UnmarshalText([]byte(text))
	}

	var nanos int64
	if err := json.Unmarshal(data, &nanos); err != nil {
		return errors.Errorf("[Duration.UnmarshalJSON] expected a duration string or nanoseconds, got %s", data)
	}
	*d = Duration(nanos)
	return nil
}

// UnmarshalText parses a time.ParseDuration string; env overrides go through here
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalText] failed to parse duration: %+v", string(text))
	}
	*d = Duration(parsed)
	return nil
}
