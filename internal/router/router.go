// Package router wires the controllers into a gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/franciscosanchezn/gin-restaurant-api/docs" // Register the swagger spec
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
)

// Controllers groups the handlers served by the API
type Controllers struct {
	Home             controllers.HomeController
	Restaurants      controllers.RestaurantController
	Pizzas           controllers.PizzaController
	RestaurantPizzas controllers.RestaurantPizzaController

	// Only used when auth is enabled
	Clients controllers.ClientController
	Token   gin.HandlerFunc
}

// Options changes how the routes are protected
type Options struct {
	// AuthEnabled puts every mutating route behind an admin Bearer token and
	// exposes the token endpoint and client management.
	AuthEnabled bool
	JWTSecret   string
	Logger      *logrus.Logger
}

// Setup initializes the Gin router and sets up the routes
func Setup(c Controllers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())

	router.GET("/", c.Home.Home)
	router.GET("/health", c.Home.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public reads
	router.GET("/restaurants", c.Restaurants.ListRestaurants)
	router.GET("/restaurants/:id", c.Restaurants.GetRestaurant)
	router.GET("/pizzas", c.Pizzas.ListPizzas)
	router.GET("/pizzas/:id", c.Pizzas.GetPizza)
	router.GET("/restaurantspizza", c.RestaurantPizzas.ListRestaurantPizzas)
	router.GET("/restaurantspizza/:id", c.RestaurantPizzas.GetRestaurantPizza)

	writes := router.Group("/")
	if opts.AuthEnabled {
		requireAdmin := []gin.HandlerFunc{
			middleware.OAuth2Auth([]byte(opts.JWTSecret)),
			middleware.RequireRole(middleware.RoleAdmin),
		}
		writes.Use(requireAdmin...)

		router.POST("/oauth/token", c.Token)

		admin := router.Group("/admin", requireAdmin...)
		{
			admin.GET("/clients", c.Clients.ListClients)
			admin.POST("/clients", c.Clients.CreateClient)
			admin.DELETE("/clients/:id", c.Clients.DeleteClient)
		}
	}
	{
		writes.POST("/restaurants", c.Restaurants.CreateRestaurant)
		writes.DELETE("/restaurants/:id", c.Restaurants.DeleteRestaurant)
		writes.POST("/pizzas", c.Pizzas.CreatePizza)
		writes.PATCH("/pizzas/:id", c.Pizzas.UpdatePizza)
		writes.DELETE("/pizzas/:id", c.Pizzas.DeletePizza)
		writes.POST("/restaurantspizza", c.RestaurantPizzas.CreateRestaurantPizza)
		writes.DELETE("/restaurantspizza/:id", c.RestaurantPizzas.DeleteRestaurantPizza)
	}

	return router
}
