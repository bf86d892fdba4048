package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/shopspring/decimal"
)

// CreatedDiscount records one price rule + discount code pair created for a
// product.
type CreatedDiscount struct {
	ProductID    int64  `json:"product_id"`
	ProductTitle string `json:"product_title"`
	PriceRuleID  int64  `json:"price_rule_id"`
	Code         string `json:"code"`
}

type DiscountSummary struct {
	ID       int64      `json:"id"`
	Title    string     `json:"name"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// DiscountReview is the result of pruning expired price rules.
type DiscountReview struct {
	Active   []DiscountSummary `json:"active_discounts"`
	Upcoming []DiscountSummary `json:"upcoming_discounts"`
}

// CreateProductDiscounts creates a percentage price rule and a discount code
// for each identified product. Identifiers may be numeric ids or exact
// titles; value is a fraction (0.2 means 20% off). Discounts created before a
// mid-sequence failure are not rolled back.
func (c *Client) CreateProductDiscounts(identifiers []string, value float64) ([]CreatedDiscount, error) {
	if len(identifiers) == 0 {
		return nil, errors.New("store: at least one product identifier is required")
	}
	if value <= 0 || value > 1 {
		return nil, fmt.Errorf("store: discount value %v must be a fraction in (0, 1]", value)
	}

	products, err := c.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("create discounts: %w", err)
	}
	matched := resolveProducts(products, identifiers)
	if len(matched) == 0 {
		return nil, ErrNotFound
	}

	percent := formatPercent(value)
	// Shopify represents percentage discounts as negative values.
	ruleValue := decimal.NewFromFloat(value * 100).Neg()
	startsAt := time.Now().UTC()

	created := make([]CreatedDiscount, 0, len(matched))
	for _, product := range matched {
		rule, err := c.priceRule.Create(goshopify.PriceRule{
			Title:              fmt.Sprintf("%s%% off %s", percent, product.Title),
			TargetType:         "line_item",
			TargetSelection:    "entitled",
			AllocationMethod:   "across",
			ValueType:          "percentage",
			Value:              &ruleValue,
			CustomerSelection:  "all",
			StartsAt:           &startsAt,
			EntitledProductIds: []int64{product.ID},
		})
		if err != nil {
			return created, fmt.Errorf("create price rule for product %d: %w", product.ID, err)
		}

		code := discountCode(percent, product.Title)
		if _, err := c.discountCode.Create(rule.ID, goshopify.PriceRuleDiscountCode{Code: code}); err != nil {
			return created, fmt.Errorf("create discount code for product %d: %w", product.ID, err)
		}

		c.logger.Info("Created discount %s for product %d", code, product.ID)
		created = append(created, CreatedDiscount{
			ProductID:    product.ID,
			ProductTitle: product.Title,
			PriceRuleID:  rule.ID,
			Code:         code,
		})
	}
	return created, nil
}

// PruneExpiredDiscounts deletes price rules whose end date has passed and
// reports the remaining active and upcoming ones.
func (c *Client) PruneExpiredDiscounts() (*DiscountReview, error) {
	rules, err := c.priceRule.List()
	if err != nil {
		return nil, fmt.Errorf("list price rules: %w", err)
	}

	now := time.Now()
	review := &DiscountReview{
		Active:   []DiscountSummary{},
		Upcoming: []DiscountSummary{},
	}
	for _, rule := range rules {
		switch {
		case rule.EndsAt != nil && rule.EndsAt.Before(now):
			if err := c.priceRule.Delete(rule.ID); err != nil {
				return nil, fmt.Errorf("delete expired price rule %d: %w", rule.ID, err)
			}
			c.logger.Info("Deleted expired price rule %d (%s)", rule.ID, rule.Title)
		case rule.StartsAt != nil && rule.StartsAt.After(now):
			review.Upcoming = append(review.Upcoming, DiscountSummary{
				ID: rule.ID, Title: rule.Title, StartsAt: rule.StartsAt,
			})
		default:
			review.Active = append(review.Active, DiscountSummary{
				ID: rule.ID, Title: rule.Title, EndsAt: rule.EndsAt,
			})
		}
	}
	return review, nil
}

// resolveProducts matches identifiers against the product list, by id for
// numeric identifiers and by exact title otherwise. Input order of the
// product list is preserved; unmatched identifiers are ignored.
func resolveProducts(products []goshopify.Product, identifiers []string) []goshopify.Product {
	ids := make(map[int64]bool)
	titles := make(map[string]bool)
	for _, ident := range identifiers {
		if id, err := strconv.ParseInt(ident, 10, 64); err == nil {
			ids[id] = true
		} else {
			titles[ident] = true
		}
	}

	var matched []goshopify.Product
	for _, p := range products {
		if ids[p.ID] || titles[p.Title] {
			matched = append(matched, p)
		}
	}
	return matched
}

// discountCode renders codes like "20OFFSUMMERTEE".
func discountCode(percent, title string) string {
	compact := strings.ToUpper(strings.ReplaceAll(title, " ", ""))
	return fmt.Sprintf("%sOFF%s", percent, compact)
}

// formatPercent renders a fractional discount as a percentage without a
// trailing ".00", so 0.2 becomes "20" and 0.125 becomes "12.5".
func formatPercent(value float64) string {
	return strconv.FormatFloat(value*100, 'f', -1, 64)
}
