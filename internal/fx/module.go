package fx

import "go.uber.org/fx"

// CoreModule holds persistence and services; callers supply *config.Config.
var CoreModule = fx.Options(
	InfrastructureModule,
	DomainModule,
)

// AppModule reúne todos os módulos da aplicação
var AppModule = fx.Options(
	ConfigModule,
	CoreModule,
	MiddlewareModule,
	RoutesModule,
	ServerModule,
	SchedulerModule,
)
