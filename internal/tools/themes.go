package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerThemeTools(r *Registry) {
	r.add(mcp.NewTool("list_themes",
		mcp.WithDescription("List the shop's themes."),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListThemes(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Themes)
	})

	r.add(mcp.NewTool("get_theme",
		mcp.WithDescription("Fetch a single theme by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Theme id.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		theme, err := client.GetTheme(ctx, id)
		if err != nil {
			return "", err
		}
		return format.Item(theme, mode(args), format.Themes)
	})

	r.add(mcp.NewTool("update_theme",
		mcp.WithDescription("Rename a theme or change its role. role=main publishes it."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Theme id.")),
		mcp.WithObject("theme", mcp.Required(), mcp.Description("Attributes to change: name, role.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "theme")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateTheme(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Themes)
	})

	r.add(mcp.NewTool("delete_theme",
		mcp.WithDescription("Delete an unpublished theme."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Theme id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteTheme(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("list_theme_assets",
		mcp.WithDescription("List a theme's assets without their content."),
		mcp.WithString("themeId", mcp.Required(), mcp.Description("Theme id.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		themeID, err := requireID(args, "themeId")
		if err != nil {
			return "", err
		}
		page, err := client.ListThemeAssets(ctx, themeID, queryOpts(args, "themeId"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Assets)
	})

	r.add(mcp.NewTool("get_theme_asset",
		mcp.WithDescription("Fetch one theme asset with its content."),
		mcp.WithString("themeId", mcp.Required(), mcp.Description("Theme id.")),
		mcp.WithString("key", mcp.Required(), mcp.Description("Asset key, e.g. templates/index.liquid.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		themeID, err := requireID(args, "themeId")
		if err != nil {
			return "", err
		}
		key, err := requireString(args, "key")
		if err != nil {
			return "", err
		}
		asset, err := client.GetThemeAsset(ctx, themeID, key)
		if err != nil {
			return "", err
		}
		return format.Item(asset, mode(args), format.Assets)
	})

	r.add(mcp.NewTool("update_theme_asset",
		mcp.WithDescription("Create or replace a theme asset."),
		mcp.WithString("themeId", mcp.Required(), mcp.Description("Theme id.")),
		mcp.WithObject("asset", mcp.Required(), mcp.Description("Asset payload: key plus value (text) or attachment (base64).")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		themeID, err := requireID(args, "themeId")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "asset")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateThemeAsset(ctx, themeID, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Assets)
	})

	r.add(mcp.NewTool("delete_theme_asset",
		mcp.WithDescription("Delete a theme asset by key."),
		mcp.WithString("themeId", mcp.Required(), mcp.Description("Theme id.")),
		mcp.WithString("key", mcp.Required(), mcp.Description("Asset key to remove.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		themeID, err := requireID(args, "themeId")
		if err != nil {
			return "", err
		}
		key, err := requireString(args, "key")
		if err != nil {
			return "", err
		}
		if err := client.DeleteThemeAsset(ctx, themeID, key); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "key": key})
	})
}
