package shopify

import (
	"context"
	"fmt"
)

// ListPriceRules returns a page of price rules.
func (c *Client) ListPriceRules(ctx context.Context, opts map[string]any) (*Page, error) {
	return c.list(ctx, "price_rules.json", "priceRules", opts)
}

// GetPriceRule returns a single price rule.
func (c *Client) GetPriceRule(ctx context.Context, id string) (any, error) {
	return c.getOne(ctx, fmt.Sprintf("price_rules/%s.json", id), "priceRule", nil)
}

// CreatePriceRule creates a price rule from internal-cased attributes.
func (c *Client) CreatePriceRule(ctx context.Context, attrs map[string]any) (any, error) {
	return c.createOne(ctx, "price_rules.json", "priceRule", attrs)
}

// UpdatePriceRule applies a partial update to a price rule.
func (c *Client) UpdatePriceRule(ctx context.Context, id string, attrs map[string]any) (any, error) {
	return c.updateOne(ctx, fmt.Sprintf("price_rules/%s.json", id), "priceRule", attrs)
}

// DeletePriceRule removes a price rule.
func (c *Client) DeletePriceRule(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("price_rules/%s.json", id))
	return err
}

// ListDiscountCodes returns the discount codes of a price rule.
func (c *Client) ListDiscountCodes(ctx context.Context, priceRuleID string) (*Page, error) {
	return c.list(ctx, fmt.Sprintf("price_rules/%s/discount_codes.json", priceRuleID), "discountCodes", nil)
}

// CreateDiscountCode creates a discount code under a price rule.
func (c *Client) CreateDiscountCode(ctx context.Context, priceRuleID string, attrs map[string]any) (any, error) {
	return c.createOne(ctx, fmt.Sprintf("price_rules/%s/discount_codes.json", priceRuleID), "discountCode", attrs)
}

// DeleteDiscountCode removes a discount code from a price rule.
func (c *Client) DeleteDiscountCode(ctx context.Context, priceRuleID, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("price_rules/%s/discount_codes/%s.json", priceRuleID, id))
	return err
}
