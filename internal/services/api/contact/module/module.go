// Package module wires contact into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "neuraledge/internal/modkit"
	"neuraledge/internal/modkit/httpkit"
	"neuraledge/internal/platform/net/middleware"
	"neuraledge/internal/platform/ratelimit"
	str "neuraledge/internal/platform/strings"
	contacthttp "neuraledge/internal/services/api/contact/http"
	contactrepo "neuraledge/internal/services/api/contact/repo"
	contactsvc "neuraledge/internal/services/api/contact/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc contactsvc.Service
}

// New constructs a contact module with the provided dependencies and options.
// The limiter backend is selected by CONTACT_LIMITER (memory or redis)
func New(deps modkit.Deps, auth middleware.AuthPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("contact"), modkit.WithPrefix("/contact")}, opts...)...)

	cfg := deps.Cfg.Prefix("CONTACT_")
	window := cfg.MayDuration("WINDOW", 5*time.Minute)

	var limiter ratelimit.Limiter
	switch backend := cfg.MayString("LIMITER", "memory"); backend {
	case "redis":
		if deps.RD == nil {
			panic("contact: CONTACT_LIMITER=redis but no redis client configured")
		}
		limiter = ratelimit.NewRedis(deps.RD, window)
	default:
		limiter = ratelimit.NewMemory(window)
	}

	repo := contactrepo.NewPG()
	svc := contactsvc.New(deps.PG, repo, limiter)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptContactPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		contacthttp.Register(r, m.svc, auth)
		if external != nil {
			external(r)
		}
	}
	return m
}

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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
