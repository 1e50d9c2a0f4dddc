package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/gateway"
	"github.com/uber/nimlsp/src/nimlsp/handler"
	"github.com/uber/nimlsp/src/nimlsp/internal/core"
	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
	"github.com/uber/nimlsp/src/nimlsp/internal/fs"
	"github.com/uber/nimlsp/src/nimlsp/internal/jsonrpcfx"
	"github.com/uber/nimlsp/src/nimlsp/internal/mainthread"
	"github.com/uber/nimlsp/src/nimlsp/internal/serverinfofile"
	"go.uber.org/fx"
)

const _serviceTag = "nimlsp-daemon"

// Module defines the nimlsp-daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	mainthread.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(newRootScope),
	fx.Decorate(decorateConfigProvider),
)

func newRootScope(lc fx.Lifecycle) tally.Scope {
	rs, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags: map[string]string{
			"service": _serviceTag,
		},
	}, 1*time.Second)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})

	return rs
}
