package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them under one API group.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
	noRoute     gin.HandlerFunc
}

func NewRegistry(engine *gin.Engine, prefix string) *Registry {
	if prefix == "" {
		prefix = "/api"
	}
	api := engine.Group(prefix)
	return &Registry{Engine: engine, API: api}
}

// Use adds middleware applied to the API group only.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// NoRoute sets the handler for requests no module matched.
func (r *Registry) NoRoute(h gin.HandlerFunc) {
	r.noRoute = h
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
	if r.noRoute != nil {
		// method mismatches fall through to NoRoute as HandleMethodNotAllowed is off
		r.Engine.NoRoute(r.noRoute)
	}
}
