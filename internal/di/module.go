package di

import (
	"go.uber.org/fx"

	"github.com/suoapvs/alexcoffee/internal/adapter/events"
	"github.com/suoapvs/alexcoffee/internal/app"
	"github.com/suoapvs/alexcoffee/internal/cartstore"
	"github.com/suoapvs/alexcoffee/internal/config"
	"github.com/suoapvs/alexcoffee/internal/logger"
	"github.com/suoapvs/alexcoffee/internal/pkg/auth"
	"github.com/suoapvs/alexcoffee/internal/server/http/handlers"
	"github.com/suoapvs/alexcoffee/internal/server/http/router"
	"github.com/suoapvs/alexcoffee/internal/storage/postgres"
	"github.com/suoapvs/alexcoffee/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cartstore.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(f *app.CoffeeFacade) handlers.CoffeeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
