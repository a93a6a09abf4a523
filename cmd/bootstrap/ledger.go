package bootstrap

import (
	"nft-market/internal/infra/solana"
	"nft-market/internal/pkg/config"
	"nft-market/internal/usecase/commands"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) (*solana.Gateway, error) {
	return solana.NewGateway(cfg.Ledger)
}
