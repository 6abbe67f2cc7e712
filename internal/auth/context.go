package auth

import (
	"context"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/pkg/ctxutil"
)

// WithPrincipal stores the resolved caller in the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	ctx = ctxutil.WithUserID(ctx, p.UserID)
	return ctxutil.WithRole(ctx, p.Role.String())
}

// PrincipalFromCtx returns the caller stored by WithPrincipal.
// Service principals carry no user ID.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if role == domain.RoleService {
		return domain.Principal{Role: role}, true
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Principal{}, false
	}
	return domain.Principal{UserID: userID, Role: role}, true
}
