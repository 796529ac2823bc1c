package main

import (
	"context"

	"backoffice/internal/config"
	"backoffice/pkg/domain"
	"backoffice/pkg/logger"
	"backoffice/pkg/storage"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const offeringsBucket = "service-offerings"

func seedTiers() []domain.FeeTier {
	tier := func(name domain.FeeTierName, min, max, pct string) domain.FeeTier {
		upper := decimal.RequireFromString(max)

		return domain.FeeTier{
			Name:       name,
			MinValue:   decimal.RequireFromString(min),
			MaxValue:   &upper,
			Percentage: decimal.RequireFromString(pct),
		}
	}

	return []domain.FeeTier{
		tier(domain.FeeTierLow, "0", "1000", "5"),
		tier(domain.FeeTierMedium, "1001", "5000", "7.5"),
		tier(domain.FeeTierHigh, "5001", "20000", "10"),
		tier(domain.FeeTierHigh, "20001", "100000", "12.5"),
	}
}

func seedOfferings() []domain.CatalogOffering {
	items := [][2]string{
		{"Company Secretary Subscription", "Enjoy 1 month free Company Secretary Subscription"},
		{"Opening of a Bank Account", "Complimentary Corporate Bank Account Opening"},
		{"Access Company Records and SSM Forms", "24/7 Secure Access to Statutory Company Records"},
		{"Priority Filling", "Documents are prioritized for submission and swift processing - within 24 hours"},
		{"Registered Office Address Use", "Use of SSM-Compliant Registered Office Address with Optional Mail Forwarding"},
		{"Compliance Calendar Setup", "Get automated reminders for all statutory deadlines"},
		{"First Share Certificate Issued Free", "Receive your company's first official share certificate at no cost"},
		{"CTC Delivery & Courier Handling", "Have your company documents and certified copies delivered securely to you"},
		{"Chat Support", "Always-On Chat Support for Compliance, Filing, and General Queries"},
	}

	out := make([]domain.CatalogOffering, 0, len(items))
	for _, it := range items {
		out = append(out, domain.CatalogOffering{
			Title:       it[0],
			Description: it[1],
			BucketName:  offeringsBucket,
		})
	}

	return out
}

// seed inserts the fee schedule and the offering catalog. Each table is only
// seeded while empty.
func seed(ctx context.Context, strg storage.Storage) error {
	return strg.WithTx(ctx, func(tx storage.AllStorage) error {
		tiers, err := tx.FeeTiers(ctx)
		if err != nil {
			return err
		}
		if len(tiers) == 0 {
			stored, err := tx.StoreFeeTiers(ctx, seedTiers()...)
			if err != nil {
				return err
			}
			logger.Info(ctx, "seeded fee tiers", zap.Int("count", len(stored)))
		} else {
			logger.Info(ctx, "fee tiers already seeded, skipping", zap.Int("count", len(tiers)))
		}

		offerings, err := tx.CatalogOfferings(ctx)
		if err != nil {
			return err
		}
		if len(offerings) == 0 {
			stored, err := tx.StoreCatalogOfferings(ctx, seedOfferings()...)
			if err != nil {
				return err
			}
			logger.Info(ctx, "seeded catalog offerings", zap.Int("count", len(stored)))
		} else {
			logger.Info(ctx, "catalog offerings already seeded, skipping", zap.Int("count", len(offerings)))
		}

		return nil
	})
}

func seedCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seeds fee tiers and the service offering catalog",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := seed(ctx, strg); err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}
		},
	}
}
