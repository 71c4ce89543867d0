package datarate

import "encoding/json"

// Rate serializes as its full-precision humanized string in the stored
// display family, e.g. "100 Mbps" or "12.5 MBps". The family suffix
// carries the display preference through the round trip.
func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Humanize(WithoutRounding()))
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.Set(raw)
}

// Set, String and Type make Rate a pflag.Value, so it can be used
// directly as a CLI flag.
func (r *Rate) Set(raw string) error {
	v, err := FromHumanReadable(raw)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (Rate) Type() string {
	return "Rate"
}
