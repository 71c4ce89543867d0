package datasize

import "encoding/json"

// Size serializes as its full-precision humanized string, e.g. "1.5 kB".
// Base-1024 scaling is a power of two, so the round trip is exact.
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Humanize(WithoutRounding()))
}

func (s *Size) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return s.Set(raw)
}

// Set, String and Type make Size a pflag.Value, so it can be used
// directly as a CLI flag.
func (s *Size) Set(raw string) error {
	v, err := FromHumanReadable(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (Size) Type() string {
	return "Size"
}
