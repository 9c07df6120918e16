package board

import (
	"encoding/json"
	"strconv"
	"strings"
)

type rewardState uint8

const (
	rewardUnspecified rewardState = iota
	rewardNull
	rewardSats
)

// Reward is the three-state task reward: unspecified (field omitted on the
// wire), explicit null, or an explicit satoshi amount where zero means a free
// task. The zero value is "unspecified".
type Reward struct {
	state rewardState
	sats  int64
}

// RewardSats returns an explicit reward of n satoshis. n == 0 is a free task,
// distinct from an unspecified reward.
func RewardSats(n int64) Reward { return Reward{state: rewardSats, sats: n} }

// RewardNull returns a reward that is sent as an explicit JSON null.
func RewardNull() Reward { return Reward{state: rewardNull} }

// Specified reports whether the reward was set at all.
func (r Reward) Specified() bool { return r.state != rewardUnspecified }

// IsNull reports whether the reward is an explicit null.
func (r Reward) IsNull() bool { return r.state == rewardNull }

// Sats returns the satoshi amount; unspecified and null both count as 0.
func (r Reward) Sats() int64 {
	if r.state == rewardSats {
		return r.sats
	}
	return 0
}

// IsZero makes the json omitzero option skip unspecified rewards, so "omit
// the field" and "send null" never collapse into each other.
func (r Reward) IsZero() bool { return r.state == rewardUnspecified }

func (r Reward) MarshalJSON() ([]byte, error) {
	switch r.state {
	case rewardSats:
		return strconv.AppendInt(nil, r.sats, 10), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON tolerates the shapes the service has been observed to emit:
// a number, a numeric string, or null. Anything non-numeric is coerced to
// unspecified rather than rejected, so a malformed record never breaks a
// report.
func (r *Reward) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*r = RewardNull()
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*r = Reward{}
		return nil
	}
	*r = RewardSats(n)
	return nil
}

var _ json.Marshaler = Reward{}
var _ json.Unmarshaler = (*Reward)(nil)
