package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"shopify-mcp-layer/internal/format"
	"shopify-mcp-layer/internal/infrastructure/shopify"
)

func registerCustomerTools(r *Registry) {
	r.add(mcp.NewTool("list_customers",
		mcp.WithDescription("List customers with optional filters and cursor pagination."),
		limitOption(),
		pageInfoOption(),
		mcp.WithArray("ids", mcp.Description("Restrict to these customer ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("sinceId", mcp.Description("Only customers with an id above this value.")),
		mcp.WithString("createdAtMin", mcp.Description("Lower bound on creation time, ISO 8601.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		page, err := client.ListCustomers(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Customers)
	})

	r.add(mcp.NewTool("search_customers",
		mcp.WithDescription("Search customers with Shopify's search syntax, e.g. \"email:jane@example.com\" or \"country:Canada\"."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search expression.")),
		limitOption(),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		if _, err := requireString(args, "query"); err != nil {
			return "", err
		}
		page, err := client.SearchCustomers(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Customers)
	})

	r.add(mcp.NewTool("get_customer",
		mcp.WithDescription("Fetch a single customer by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Customer id.")),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		customer, err := client.GetCustomer(ctx, id, queryOpts(args, "id"))
		if err != nil {
			return "", err
		}
		return format.Item(customer, mode(args), format.Customers)
	})

	r.add(mcp.NewTool("create_customer",
		mcp.WithDescription("Create a customer."),
		mcp.WithObject("customer", mcp.Required(), mcp.Description("Customer attributes: firstName, lastName, email, phone, addresses, tags.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		attrs, err := requireObject(args, "customer")
		if err != nil {
			return "", err
		}
		created, err := client.CreateCustomer(ctx, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(created, mode(args), format.Customers)
	})

	r.add(mcp.NewTool("update_customer",
		mcp.WithDescription("Update a customer."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Customer id.")),
		mcp.WithObject("customer", mcp.Required(), mcp.Description("Attributes to change, camelCase keys.")),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		attrs, err := requireObject(args, "customer")
		if err != nil {
			return "", err
		}
		updated, err := client.UpdateCustomer(ctx, id, attrs)
		if err != nil {
			return "", err
		}
		return format.Item(updated, mode(args), format.Customers)
	})

	r.add(mcp.NewTool("delete_customer",
		mcp.WithDescription("Delete a customer. Fails if the customer has order history."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Customer id.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return "", err
		}
		if err := client.DeleteCustomer(ctx, id); err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"deleted": true, "id": id})
	})

	r.add(mcp.NewTool("count_customers",
		mcp.WithDescription("Count customers."),
		mcp.WithString("createdAtMin", mcp.Description("Lower bound on creation time, ISO 8601.")),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		n, err := client.CountCustomers(ctx, queryOpts(args))
		if err != nil {
			return "", err
		}
		return format.JSON(map[string]any{"count": n})
	})

	r.add(mcp.NewTool("list_customer_orders",
		mcp.WithDescription("List the orders belonging to a customer."),
		mcp.WithString("customerId", mcp.Required(), mcp.Description("Customer id.")),
		mcp.WithString("status", mcp.Description("Order status filter."), mcp.Enum("open", "closed", "cancelled", "any")),
		limitOption(),
		fieldsOption(),
		formatOption(),
	), func(ctx context.Context, client *shopify.Client, args map[string]any) (string, error) {
		customerID, err := requireID(args, "customerId")
		if err != nil {
			return "", err
		}
		page, err := client.ListCustomerOrders(ctx, customerID, queryOpts(args, "customerId"))
		if err != nil {
			return "", err
		}
		return format.Page(page, mode(args), format.Orders)
	})
}
