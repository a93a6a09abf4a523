package components

import (
	"nft-market/internal/domain/payment"
	"nft-market/internal/pkg/clock"
	"nft-market/internal/pkg/config"
	"nft-market/internal/usecase/commands"
	"nft-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewPurchaseConfig,
		commands.NewPurchaseCommands,
		NewNFTQueries,
	),
)

// Fails fast at startup when the configured payee address or price is
// unusable, instead of on the first purchase.
func NewPurchaseConfig(cfg config.Config) (commands.PurchaseConfig, error) {
	payee, err := payment.NewWalletAddress(cfg.Ledger.PayeeWallet)
	if err != nil {
		return commands.PurchaseConfig{}, err
	}
	price, err := payment.NewTokenAmount(cfg.Ledger.PriceBaseUnits)
	if err != nil {
		return commands.PurchaseConfig{}, err
	}
	return commands.PurchaseConfig{Payee: payee, Price: price}, nil
}

func NewNFTQueries(repo queries.OwnershipReadStore, cfg config.Config) queries.NFTQueries {
	return queries.NewNFTQueries(repo, cfg.Ledger.PublicBaseURL)
}
