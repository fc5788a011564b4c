package router

import (
	"context"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/auth"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// NewControllers builds the services on top of one entity store and returns
// the controllers serving them. The token endpoint is only built when auth
// is enabled.
func NewControllers(db *gorm.DB, opts Options) Controllers {
	s := store.New(db)
	queries := services.NewQueryService(s)
	cascade := services.NewCascadeDeleteService(s)

	c := Controllers{
		Home:             controllers.NewHomeController(pinger(db)),
		Restaurants:      controllers.NewRestaurantController(queries, services.NewRestaurantService(s), cascade),
		Pizzas:           controllers.NewPizzaController(queries, services.NewPizzaService(s), cascade),
		RestaurantPizzas: controllers.NewRestaurantPizzaController(queries, services.NewAssociationService(s)),
		Clients:          controllers.NewClientController(services.NewClientService(db)),
	}
	if opts.AuthEnabled {
		c.Token = auth.NewOAuthService(db, services.NewUserService(db), opts.JWTSecret).HandleToken
	}
	return c
}

func pinger(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
