package modkit

import (
	"net/http"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks must default to no-ops")
	}
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.SwaggerOn {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestBuildOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	b := Build(
		WithName("contact"),
		WithPrefix("/contact"),
		WithMiddlewares(mw),
		WithPorts("ports"),
		WithSwagger(true),
	)
	if b.Name != "contact" || b.Prefix != "/contact" {
		t.Fatalf("name/prefix: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("want 1 middleware, got %d", len(b.Mw))
	}
	if b.Ports != "ports" || !b.SwaggerOn {
		t.Fatalf("ports/swagger: %+v", b)
	}
}
