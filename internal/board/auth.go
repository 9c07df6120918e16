package board

import (
	"net/http"

	"github.com/satsboard/satsboard/internal/config"
)

// CallingContext is the resolved authentication bundle attached to every
// outgoing request. It is derived once from configuration and never changes
// for the lifetime of a client.
type CallingContext struct {
	bearer string
	usr    string
}

// ResolveContext derives a CallingContext from configuration. An access token
// becomes a bearer header; a user id (user_id first, then the legacy usr
// alias) becomes a usr query parameter. The two are additive. When neither is
// configured the resolver fails with ErrNoCredentials before any network call
// is made.
func ResolveContext(cfg *config.Config) (CallingContext, error) {
	cc := CallingContext{
		bearer: cfg.AccessToken,
		usr:    cfg.User(),
	}
	if cc.bearer == "" && cc.usr == "" {
		return CallingContext{}, ErrNoCredentials
	}
	return cc, nil
}

// HasBearer reports whether requests will carry an Authorization header.
func (cc CallingContext) HasBearer() bool { return cc.bearer != "" }

// UserParam returns the usr query parameter value, empty when unset.
func (cc CallingContext) UserParam() string { return cc.usr }

// apply attaches the bearer header and usr parameter to a request.
func (cc CallingContext) apply(req *http.Request) {
	if cc.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+cc.bearer)
	}
	if cc.usr != "" {
		q := req.URL.Query()
		q.Set("usr", cc.usr)
		req.URL.RawQuery = q.Encode()
	}
}
