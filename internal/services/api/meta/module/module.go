// Package module wires meta endpoints into the API using a tiny module
package module

import (
	stdctx "context"
	"net/http"
	"time"

	modkit "neuraledge/internal/modkit"
	"neuraledge/internal/modkit/httpkit"
	str "neuraledge/internal/platform/strings"

	metahttp "neuraledge/internal/services/api/meta/http"

	"github.com/redis/go-redis/v9"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "neuraledge-api",
			StartedAt:   m.startedAt,
			PG:          deps.PG,
			CH:          deps.CH,
			RD:          redisPinger(deps.RD),
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// redisPinger adapts the redis client to the handler's Pinger seam
// a nil client stays nil so the check reports skipped
func redisPinger(c redis.UniversalClient) any {
	if c == nil {
		return nil
	}
	return pingAdapter{c: c}
}

type pingAdapter struct{ c redis.UniversalClient }

func (p pingAdapter) Ping(ctx stdctx.Context) error { return p.c.Ping(ctx).Err() }

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
