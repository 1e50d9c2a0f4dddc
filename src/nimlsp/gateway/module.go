package gateway

import (
	ideclient "github.com/uber/nimlsp/src/nimlsp/gateway/ide-client"
	"go.uber.org/fx"
)

// Module provides the outbound gateways of the daemon.
var Module = fx.Provide(ideclient.New)
