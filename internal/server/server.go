package server

import (
	"cinemadia/internal/biz"

	"github.com/google/wire"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(
	NewHTTPServer,
	NewGRPCServer,
	wire.Bind(new(Authenticator), new(*biz.AccountUseCase)),
)
