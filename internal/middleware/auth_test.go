package middleware

import (
	"testing"

	"github.com/valyala/fasthttp"
)

func runAuth(token, header string) (*fasthttp.RequestCtx, bool) {
	called := false
	handler := BearerAuth(token, nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/private/tasks/")
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}
	handler(ctx)
	return ctx, called
}

func TestBearerAuthAccepts(t *testing.T) {
	_, called := runAuth("s3cret", "Bearer s3cret")
	if !called {
		t.Fatal("valid token must reach the handler")
	}
}

func TestBearerAuthRejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong token", "Bearer nope"},
		{"token prefix", "Bearer s3c"},
		{"token with suffix", "Bearer s3cret0"},
		{"wrong scheme", "Basic s3cret"},
		{"lowercase scheme", "bearer s3cret"},
		{"bare token", "s3cret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, called := runAuth("s3cret", tc.header)
			if called {
				t.Fatal("handler must not run")
			}
			if ctx.Response.StatusCode() != fasthttp.StatusForbidden {
				t.Errorf("status = %d", ctx.Response.StatusCode())
			}
			want := `{"status":"error","error":{"code":"forbidden","message":"Invalid token"}}`
			if string(ctx.Response.Body()) != want {
				t.Errorf("body = %s", ctx.Response.Body())
			}
		})
	}
}

func TestBearerAuthDisabledWithoutToken(t *testing.T) {
	_, called := runAuth("", "")
	if !called {
		t.Fatal("empty configured token must disable the gate")
	}
}
