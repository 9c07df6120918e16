package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rewardWrapper struct {
	Reward Reward `json:"reward,omitzero"`
}

func TestReward_UnspecifiedOmitsField(t *testing.T) {
	data, err := json.Marshal(rewardWrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestReward_ExplicitZeroIsSent(t *testing.T) {
	data, err := json.Marshal(rewardWrapper{Reward: RewardSats(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reward": 0}`, string(data))
}

func TestReward_ExplicitNullIsSent(t *testing.T) {
	data, err := json.Marshal(rewardWrapper{Reward: RewardNull()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reward": null}`, string(data))
}

func TestReward_SatsAmount(t *testing.T) {
	data, err := json.Marshal(rewardWrapper{Reward: RewardSats(5000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reward": 5000}`, string(data))
}

func TestReward_UnmarshalShapes(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		specified bool
		sats      int64
	}{
		{"number", `{"reward": 5000}`, true, 5000},
		{"zero", `{"reward": 0}`, true, 0},
		{"numeric string", `{"reward": "2100"}`, true, 2100},
		{"null", `{"reward": null}`, true, 0},
		{"garbage coerced", `{"reward": "plenty"}`, false, 0},
		{"absent", `{}`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w rewardWrapper
			require.NoError(t, json.Unmarshal([]byte(tt.in), &w))
			assert.Equal(t, tt.specified, w.Reward.Specified())
			assert.Equal(t, tt.sats, w.Reward.Sats())
		})
	}
}

func TestReward_NullSumsAsZero(t *testing.T) {
	r := RewardNull()
	assert.True(t, r.Specified())
	assert.True(t, r.IsNull())
	assert.Equal(t, int64(0), r.Sats())
}
