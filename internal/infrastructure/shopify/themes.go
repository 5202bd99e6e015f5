package shopify

import (
	"context"
	"fmt"
	"net/http"
)

// ListThemes returns the shop's themes.
func (c *Client) ListThemes(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "themes.json", "themes", opts)
}

// GetTheme returns a single theme.
func (c *Client) GetTheme(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("themes/%s.json", id), "theme", nil)
}

// UpdateTheme renames a theme or changes its role. Publishing a theme is
// role=main.
func (c *Client) UpdateTheme(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("themes/%s.json", id), "theme", attrs)
}

// DeleteTheme removes an unpublished theme.
func (c *Client) DeleteTheme(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("themes/%s.json", id))
	return err
}

// ListThemeAssets returns the asset listing of a theme. Asset payloads are
// omitted at this level; use GetThemeAsset for content.
func (c *Client) ListThemeAssets(ctx context.Context, themeID string, opts map[string]any) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("themes/%s/assets.json", themeID), "assets", opts)
}

// GetThemeAsset returns one asset with its content. The platform addresses
// assets by key through a bracketed query parameter.
func (c *Client) GetThemeAsset(ctx context.Context, themeID, key string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("themes/%s/assets.json", themeID), "asset", map[string]any{"asset[key]": key})
}

// UpdateThemeAsset creates or replaces an asset.
func (c *Client) UpdateThemeAsset(ctx context.Context, themeID string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("themes/%s/assets.json", themeID), "asset", attrs)
}

// DeleteThemeAsset removes an asset by key.
func (c *Client) DeleteThemeAsset(ctx context.Context, themeID, key string) error {
	path := fmt.Sprintf("themes/%s/assets.json", themeID)
	_, err := c.Do(ctx, http.MethodDelete, path, map[string]any{"asset[key]": key}, nil)
	return err
}
