package shopify

import (
	"context"
	"fmt"
)

// ListCustomers returns a page of customers.
func (c *Client) ListCustomers(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "customers.json", "customers", opts)
}

// SearchCustomers runs the customer search endpoint. The query option uses
// Shopify's search syntax, for example "email:jane@example.com".
func (c *Client) SearchCustomers(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "customers/search.json", "customers", opts)
}

// GetCustomer returns a single customer.
func (c *Client) GetCustomer(ctx context.Context, id string, opts map[string]any) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("customers/%s.json", id), "customer", opts)
}

// CreateCustomer creates a customer from internal-cased attributes.
func (c *Client) CreateCustomer(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "customers.json", "customer", attrs)
}

// UpdateCustomer applies a partial update to a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("customers/%s.json", id), "customer", attrs)
}

// DeleteCustomer removes a customer. Customers with order history cannot be
// deleted and the platform answers 422.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("customers/%s.json", id))
	return err
}

// CountCustomers returns the total customer count.
func (c *Client) CountCustomers(ctx context.Context, opts map[string]any) (int, error) {
	return c.countOf(ctx, "customers/count.json", opts)
}

// ListCustomerOrders returns the orders belonging to a customer.
func (c *Client) ListCustomerOrders(ctx context.Context, customerID string, opts map[string]any) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("customers/%s/orders.json", customerID), "orders", opts)
}
