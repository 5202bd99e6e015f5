package api

import (
	"net/http"

	"shopify-mcp-layer/internal/domain"
)

// tenantContext lifts the caller's credential headers into the request
// context. The integration key wins over direct credentials; actual
// validation and lookup happen in the credentials service, so requests
// without any headers still pass through for routes that need none.
func tenantContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if key := r.Header.Get("X-Integration-Key"); key != "" {
			ctx = domain.WithIntegrationKey(ctx, key)
		} else {
			creds := domain.Credentials{
				ShopDomain:  r.Header.Get("X-Shopify-Shop-Domain"),
				AccessToken: r.Header.Get("X-Shopify-Access-Token"),
				APIVersion:  r.Header.Get("X-Shopify-Api-Version"),
			}
			if creds.ShopDomain != "" || creds.AccessToken != "" {
				ctx = domain.WithCredentials(ctx, creds)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
