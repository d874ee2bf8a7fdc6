package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdesk/backend/api/transport"
	"github.com/taskdesk/backend/domain"
)

// BearerAuth gates the private API behind a static bearer token. The header
// scheme must be exactly "Bearer" and the credential must equal the
// configured token. An empty configured token disables the check.
func BearerAuth(token string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if token == "" {
				next(ctx)
				return
			}

			scheme, credential, ok := splitAuthorization(ctx)
			if !ok || scheme != "Bearer" || !tokenEqual(credential, token) {
				logger.Warn("rejected request with invalid token",
					zap.String("path", string(ctx.Path())))
				forbid(ctx)
				return
			}

			next(ctx)
		}
	}
}

// tokenEqual compares credentials in constant time.
func tokenEqual(credential, token string) bool {
	return subtle.ConstantTimeCompare([]byte(credential), []byte(token)) == 1
}

func splitAuthorization(ctx *fasthttp.RequestCtx) (scheme, credential string, ok bool) {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return "", "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func forbid(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusForbidden)
	body, _ := json.Marshal(transport.NewError(
		string(domain.ErrCodeForbidden), domain.ErrForbidden.Message,
	))
	ctx.SetBody(body)
}
