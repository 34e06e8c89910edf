package routerhelper

import (
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers httprouter handles under a common path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (rg *RouteGroup) path(p string) string {
	return path.Join(rg.prefix, p)
}

func (rg *RouteGroup) POST(p string, handle httprouter.Handle) {
	rg.router.POST(rg.path(p), handle)
}
