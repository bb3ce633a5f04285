// Package module wires blog into the API using modkit
package module

import (
	"crypto/subtle"
	"net/http"

	modkit "neuraledge/internal/modkit"
	"neuraledge/internal/modkit/httpkit"
	perr "neuraledge/internal/platform/errors"
	"neuraledge/internal/platform/net/middleware"
	str "neuraledge/internal/platform/strings"
	bloghttp "neuraledge/internal/services/api/blog/http"
	blogrepo "neuraledge/internal/services/api/blog/repo"
	blogsvc "neuraledge/internal/services/api/blog/service"
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

	svc blogsvc.Service
}

// NewAuthPort builds the shared-secret bearer port from BLOG_API_KEY.
// The comparison is constant time; authenticated callers act as admin
func NewAuthPort(deps modkit.Deps) middleware.AuthPort {
	key := deps.Cfg.Prefix("BLOG_").MustString("API_KEY")
	return httpkit.NewPortFunc(func(token string) (string, error) {
		if subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
			return "", perr.Unauthorizedf("invalid bearer token")
		}
		return "admin", nil
	})
}

// New constructs a blog module with the provided dependencies and options
func New(deps modkit.Deps, auth middleware.AuthPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("blog"), modkit.WithPrefix("/blogs")}, opts...)...)

	repo := blogrepo.NewPG()
	svc := blogsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptBlogPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		bloghttp.Register(r, m.svc, auth)
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
