package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/seed"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

var seedOpts = seed.DefaultOptions()

func init() { //nolint: gochecknoinits
	seedCmd.Flags().IntVar(&seedOpts.Restaurants, "restaurants", seedOpts.Restaurants, "Number of restaurants to create")
	seedCmd.Flags().IntVar(&seedOpts.Pizzas, "pizzas", seedOpts.Pizzas, "Number of pizzas to create")
	seedCmd.Flags().IntVar(&seedOpts.Associations, "associations", seedOpts.Associations, "Number of restaurant pizzas to create")
	seedCmd.Flags().Uint64Var(&seedOpts.Seed, "seed", 0, "Random seed, 0 picks one")

	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with fake restaurants, pizzas and prices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Error("Failed to close database")
			}
		}()

		res, err := seed.Run(cmd.Context(), store.New(db), seedOpts)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d restaurants, %d pizzas and %d restaurant pizzas\n",
			res.Restaurants, res.Pizzas, res.Associations)
		return nil
	},
}
