package catalog

import "github.com/Yoavga19/barber/models"

// Catalog is the fixed service-name-to-price mapping. It is built once at
// startup and never mutated afterwards.
type Catalog struct {
	prices map[string]int
	order  []string
}

// New builds a catalog from the given services, preserving their order for
// display. Later duplicates of a name override earlier ones.
func New(services []models.Service) *Catalog {
	c := &Catalog{prices: make(map[string]int, len(services))}
	for _, svc := range services {
		if _, seen := c.prices[svc.Name]; !seen {
			c.order = append(c.order, svc.Name)
		}
		c.prices[svc.Name] = svc.Price
	}
	return c
}

// Default returns the salon's price list.
func Default() *Catalog {
	return New([]models.Service{
		{Name: "Men's Haircut", Price: 80},
		{Name: "Women's Haircut", Price: 120},
		{Name: "Blow Dry", Price: 70},
		{Name: "Color", Price: 250},
	})
}

// Price returns the price for the named service and whether it exists.
func (c *Catalog) Price(name string) (int, bool) {
	price, ok := c.prices[name]
	return price, ok
}

// List returns the catalog in display order.
func (c *Catalog) List() []models.Service {
	services := make([]models.Service, 0, len(c.order))
	for _, name := range c.order {
		services = append(services, models.Service{Name: name, Price: c.prices[name]})
	}
	return services
}
