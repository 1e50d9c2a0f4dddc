package handler

import (
	controller "github.com/uber/nimlsp/src/nimlsp/controller"
	nimlspdaemon "github.com/uber/nimlsp/src/nimlsp/controller/nimlsp-daemon"
	handler "github.com/uber/nimlsp/src/nimlsp/handler/nimlsp-daemon"
	"github.com/uber/nimlsp/src/nimlsp/repository/project"
	"github.com/uber/nimlsp/src/nimlsp/repository/session"
	"go.uber.org/fx"
)

// Module provides the nimlsp-daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(project.New),
	fx.Provide(handler.New),
	fx.Invoke(outputServiceInfo),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(m nimlspdaemon.Controller) {}),
)
