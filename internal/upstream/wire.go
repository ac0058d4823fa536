package upstream

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// stringList accepts both a single string and an array of strings. The
// backend has served image_url both ways across revisions.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*s = nil
		} else {
			*s = stringList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = stringList(many)
	return nil
}

// dollars is a backend money amount in floating-point dollars (sometimes
// serialized as a string). Cents returns it as int64 cents.
type dollars float64

func (d *dollars) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*d = dollars(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*d = dollars(f)
	return nil
}

func (d dollars) Cents() int64 {
	return int64(math.Round(float64(d) * 100))
}

// flexTime accepts epoch milliseconds or an RFC 3339 / date-only string.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		*t = flexTime(time.UnixMilli(millis).UTC())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = flexTime(parsed.UTC())
			return nil
		}
	}
	*t = flexTime{}
	return nil
}

func (t flexTime) Time() time.Time {
	return time.Time(t)
}
