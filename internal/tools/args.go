package tools

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
)

// ErrInvalidArguments marks caller mistakes so the server boundary can label
// them apart from upstream failures.
var ErrInvalidArguments = errors.New("invalid arguments")

func missingArg(key string) error {
	return fmt.Errorf("%w: missing required argument %q", ErrInvalidArguments, key)
}

func requireString(args map[string]any, key string) (string, error) {
	v, _ := args[key].(string)
	if strings.TrimSpace(v) == "" {
		return "", missingArg(key)
	}
	return v, nil
}

// requireID accepts ids as strings or as JSON numbers, since models send
// both. Numbers render without an exponent so large ids survive.
func requireID(args map[string]any, key string) (string, error) {
	switch v := args[key].(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			return v, nil
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return "", missingArg(key)
}

func requireObject(args map[string]any, key string) (map[string]any, error) {
	v, _ := args[key].(map[string]any)
	if len(v) == 0 {
		return nil, missingArg(key)
	}
	return v, nil
}

func requireNumber(args map[string]any, key string) (float64, error) {
	v, ok := args[key].(float64)
	if !ok {
		return 0, missingArg(key)
	}
	return v, nil
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func boolArg(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

func objectArg(args map[string]any, key string) map[string]any {
	v, _ := args[key].(map[string]any)
	return v
}

// queryOpts copies the arguments into a query option map, dropping the
// shared format argument and any path-bound keys the caller names.
func queryOpts(args map[string]any, reserved ...string) map[string]any {
	opts := make(map[string]any, len(args))
	for key, value := range args {
		opts[key] = value
	}
	delete(opts, "format")
	for _, key := range reserved {
		delete(opts, key)
	}
	return opts
}

func mode(args map[string]any) format.Mode {
	return format.ParseMode(stringArg(args, "format"))
}

// formatOption is the shared rendering selector carried by every tool that
// returns entity data.
func formatOption() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Response format."),
		mcp.Enum("json", "markdown"),
		mcp.DefaultString("json"),
	)
}

// limitOption is the shared page size argument for list tools.
func limitOption() mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description("Page size, up to 250. Defaults to 50."),
		mcp.Min(1),
		mcp.Max(250),
	)
}

// pageInfoOption carries the cursor from a previous page's nextCursor. The
// platform rejects most filters alongside a cursor; callers resend only the
// limit.
func pageInfoOption() mcp.ToolOption {
	return mcp.WithString("pageInfo",
		mcp.Description("Opaque pagination cursor from a previous response's nextCursor."),
	)
}

func fieldsOption() mcp.ToolOption {
	return mcp.WithString("fields",
		mcp.Description("Comma-separated list of fields to include."),
	)
}
