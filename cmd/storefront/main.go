package main

import (
	"context"
	"log"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/cart"
	"github.com/safar/go-storefront/internal/catalog"
	"github.com/safar/go-storefront/internal/config"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/orders"
	"github.com/safar/go-storefront/internal/storage"
	"github.com/safar/go-storefront/internal/store"
)

// Walks the demo flow once: seed, log in the demo customer, browse, fill a
// cart and check out.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	backend, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Open storage backend: %v", err)
	}
	defer backend.Close()

	log.Printf("Using %s storage backend", cfg.Storage.Backend)

	entities := store.New(backend)

	session, err := auth.NewSession(entities)
	if err != nil {
		log.Fatalf("Start session: %v", err)
	}

	authz, err := auth.NewAuthorizer()
	if err != nil {
		log.Fatalf("Build authorizer: %v", err)
	}

	basket := cart.New(entities, session, authz)
	checkout := orders.NewService(entities, session, basket, authz, cfg.Checkout)

	if _, err := session.Login("customer@demo.com", "customer123"); err != nil {
		log.Fatalf("Login: %v", err)
	}
	log.Printf("Logged in as %s (%s)", session.Current().Name, session.Current().Role)

	products, err := entities.Products()
	if err != nil {
		log.Fatalf("Load products: %v", err)
	}
	categories, err := entities.Categories()
	if err != nil {
		log.Fatalf("Load categories: %v", err)
	}

	electronics := catalog.Query(products, categories, catalog.Filters{
		CategoryID: "cat-1",
		SortBy:     catalog.SortPopular,
	})
	page := catalog.Paginate(electronics, 1)
	log.Printf("Electronics, most popular first (%d found):", page.Total)
	for _, p := range page.Items {
		log.Printf("  %-28s $%s  %.1f stars (%d reviews)", p.Title, p.Price, p.RatingAvg, p.RatingCount)
	}

	if err := basket.Add("prod-1", 2); err != nil {
		log.Fatalf("Add to cart: %v", err)
	}
	if err := basket.Add("prod-3", 1); err != nil {
		log.Fatalf("Add to cart: %v", err)
	}

	summary, err := basket.Summarize()
	if err != nil {
		log.Fatalf("Summarize cart: %v", err)
	}
	log.Printf("Cart: %d items, subtotal $%s", summary.ItemCount, summary.Total)

	order, err := checkout.Checkout(context.Background(), orders.CheckoutRequest{
		Delivery: orders.DeliveryExpress,
		Payment:  orders.PaymentCard,
		Address: models.Address{
			FullName: session.Current().Name,
			Phone:    session.Current().Phone,
			Street:   "1 Demo Street",
			City:     "Tashkent",
			Country:  "Uzbekistan",
		},
	})
	if err != nil {
		log.Fatalf("Checkout: %v", err)
	}

	log.Printf("Order %s placed: status=%s total=$%s", order.ID, order.Status, order.Total)
	for _, share := range order.SellerBreakdown {
		log.Printf("  seller %s: %d line(s), subtotal $%s", share.SellerID, len(share.Items), share.Subtotal)
	}
}
