// Package api provides the HTTP API for the application
package api

import (
	"neuraledge/internal/platform/config"
	"neuraledge/internal/platform/logger"
	phttp "neuraledge/internal/platform/net/http"
	"neuraledge/internal/platform/store"

	"neuraledge/internal/modkit"
	"neuraledge/internal/modkit/httpkit"
	"neuraledge/internal/modkit/module"
	"neuraledge/internal/modkit/swaggerkit"

	blogmod "neuraledge/internal/services/api/blog/module"
	contactmod "neuraledge/internal/services/api/contact/module"
	estimatemod "neuraledge/internal/services/api/estimate/module"
	metamod "neuraledge/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RD:  opt.Store.RD,
	}

	// both blog writes and the contact admin listing share the same
	// BLOG_API_KEY bearer port
	auth := blogmod.NewAuthPort(deps)

	mods := []module.Module{
		metamod.New(deps),
		estimatemod.New(deps),
		blogmod.New(deps, auth),
		contactmod.New(deps, auth),
	}

	origins := opt.Config.Prefix("CORE_API_").MayCSV("CORS_ORIGINS", nil)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(origins), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
