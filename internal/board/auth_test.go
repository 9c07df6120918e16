package board

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satsboard/satsboard/internal/config"
)

func TestResolveContext_TokenOnly(t *testing.T) {
	cc, err := ResolveContext(&config.Config{AccessToken: "tok-123"})
	require.NoError(t, err)
	assert.True(t, cc.HasBearer())
	assert.Empty(t, cc.UserParam())
}

func TestResolveContext_UserOnly(t *testing.T) {
	cc, err := ResolveContext(&config.Config{UserID: "usr-1"})
	require.NoError(t, err)
	assert.False(t, cc.HasBearer())
	assert.Equal(t, "usr-1", cc.UserParam())
}

func TestResolveContext_BothAdditive(t *testing.T) {
	cc, err := ResolveContext(&config.Config{AccessToken: "tok-123", UserID: "usr-1"})
	require.NoError(t, err)
	assert.True(t, cc.HasBearer())
	assert.Equal(t, "usr-1", cc.UserParam())
}

func TestResolveContext_LegacyUsrAlias(t *testing.T) {
	cc, err := ResolveContext(&config.Config{Usr: "legacy-7"})
	require.NoError(t, err)
	assert.Equal(t, "legacy-7", cc.UserParam())

	// user_id wins over the alias when both are set
	cc, err = ResolveContext(&config.Config{UserID: "usr-1", Usr: "legacy-7"})
	require.NoError(t, err)
	assert.Equal(t, "usr-1", cc.UserParam())
}

func TestResolveContext_NeitherFails(t *testing.T) {
	_, err := ResolveContext(&config.Config{ServiceURL: "https://example.com", WalletID: "w1"})
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestCallingContext_Apply(t *testing.T) {
	cc, err := ResolveContext(&config.Config{AccessToken: "tok-123", UserID: "usr-1"})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/boards?limit=5", nil)
	cc.apply(req)

	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
	assert.Equal(t, "usr-1", req.URL.Query().Get("usr"))
	assert.Equal(t, "5", req.URL.Query().Get("limit"), "existing query parameters survive")
}

func TestCallingContext_ApplyTokenOnlyAddsNoUsr(t *testing.T) {
	cc, err := ResolveContext(&config.Config{AccessToken: "tok-123"})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/boards", nil)
	cc.apply(req)

	assert.False(t, req.URL.Query().Has("usr"))
}
