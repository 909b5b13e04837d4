package app

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/shop-kiosk/db"
	"github.com/xenking/shop-kiosk/internal/auditlog"
	"github.com/xenking/shop-kiosk/internal/console"
	"github.com/xenking/shop-kiosk/internal/domain/cart"
	"github.com/xenking/shop-kiosk/internal/domain/order"
	"github.com/xenking/shop-kiosk/internal/domain/product"
)

// Run seeds the catalog, creates all dependencies, and drives the console
// loop until exit. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config, in io.Reader, out io.Writer) error {
	products, err := product.DecodeSeed(db.ProductSeed)
	if err != nil {
		return errors.Wrap(err, "decode product seed")
	}

	catalog := product.NewCatalog(cfg.CatalogCapacity)
	for _, p := range products {
		if err := catalog.Add(p); err != nil {
			return errors.Wrapf(err, "seed product %s", p.ID)
		}
	}
	lg.Info("catalog seeded", zap.Int("products", catalog.Len()))

	audit := auditlog.NewFile(cfg.AuditLogPath)
	ledger := order.NewLedger(cfg.MaxOrders, audit, lg)
	basket := cart.New(cfg.CartMaxLines)

	ctrl := console.New(in, out, catalog, basket, ledger, lg)
	return ctrl.Run(ctx)
}
