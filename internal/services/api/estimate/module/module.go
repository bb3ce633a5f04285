// Package module wires estimate into the API using modkit
package module

import (
	"net/http"

	"neuraledge/internal/core/estimate"
	modkit "neuraledge/internal/modkit"
	"neuraledge/internal/modkit/httpkit"
	str "neuraledge/internal/platform/strings"
	esthttp "neuraledge/internal/services/api/estimate/http"
	estrepo "neuraledge/internal/services/api/estimate/repo"
	estsvc "neuraledge/internal/services/api/estimate/service"
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

	svc estsvc.Service
}

// New constructs an estimate module. Model constants come from ESTIMATE_*
// env overrides on top of the published defaults
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("estimate"), modkit.WithPrefix("/estimate")}, opts...)...)

	cfg := deps.Cfg.Prefix("ESTIMATE_")
	def := estimate.DefaultAssumptions()
	assumptions := estimate.Assumptions{
		Efficiency:         cfg.MayFloat64("EFFICIENCY", def.Efficiency),
		ErrorCostShare:     cfg.MayFloat64("ERROR_COST_SHARE", def.ErrorCostShare),
		ImplementationCost: cfg.MayFloat64("IMPLEMENTATION_COST", def.ImplementationCost),
		WorkYearHours:      cfg.MayFloat64("WORK_YEAR_HOURS", def.WorkYearHours),
		ErrorReductionRate: cfg.MayFloat64("ERROR_REDUCTION_RATE", def.ErrorReductionRate),
	}

	var sink estrepo.Sink = estrepo.Nop{}
	if deps.CH != nil {
		sink = estrepo.NewCH(deps.CH)
	}
	svc := estsvc.New(assumptions, sink)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptEstimatePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		esthttp.Register(r, m.svc)
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
