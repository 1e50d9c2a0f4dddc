package controller

import (
	"github.com/uber/nimlsp/src/nimlsp/controller/documents"
	nimlspdaemon "github.com/uber/nimlsp/src/nimlsp/controller/nimlsp-daemon"
	"github.com/uber/nimlsp/src/nimlsp/controller/toolchain"
	"github.com/uber/nimlsp/src/nimlsp/controller/workspace"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(nimlspdaemon.New),
	fx.Provide(documents.New),
	fx.Provide(toolchain.New),
	fx.Provide(workspace.New),
)
