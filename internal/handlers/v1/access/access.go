// Package access rejects unidentified and under-privileged callers before an
// operation's request body is read.
package access

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/logging"
)

// IdentityHeader carries the caller token on every /api operation.
const IdentityHeader = "user-id"

// AdminOnly is the Operation.Metadata key marking admin-only operations.
const AdminOnly = "adminOnly"

// Middleware resolves the caller of every /api operation. Unknown callers get
// 401 and non-admins calling an AdminOnly operation get 403, both ahead of
// body parsing and validation.
func Middleware(api huma.API, resolver identity.Resolver) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		if op == nil || !strings.HasPrefix(op.Path, "/api/") {
			next(ctx)
			return
		}

		caller, err := resolver.Resolve(ctx.Context(), ctx.Header(IdentityHeader))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		logData := logging.GetLogData(ctx.Context())
		logData.AddData("userId", caller.UserID)

		if adminOnly, _ := op.Metadata[AdminOnly].(bool); adminOnly && !caller.IsAdmin() {
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "Forbidden")
			return
		}

		next(ctx)
	}
}
