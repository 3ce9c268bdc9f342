package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
	"github.com/Balogunsamuel/grocery-shop-web/internal/pricing"
	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "grocery-cli",
		Usage: "administrative tasks for the grocery shop",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "path to the sqlite database",
				Value:   "./grocery.db",
				EnvVars: []string{"DB_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "add-user",
				Usage: "create an admin user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "name", Value: "Admin"},
				},
				Action: addUser,
			},
			{
				Name:   "seed",
				Usage:  "load demo categories and products",
				Action: seed,
			},
			{
				Name:  "orders",
				Usage: "list recent orders",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20},
				},
				Action: listOrders,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openStore(c *cli.Context) (*store.Store, error) {
	db, err := store.NewStore(c.String("db"))
	if err != nil {
		return nil, err
	}
	// Schema may not exist yet if the cli runs before the server.
	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func addUser(c *cli.Context) error {
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	hashed, err := bcrypt.GenerateFromPassword([]byte(c.String("password")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:     c.String("name"),
		Email:    c.String("email"),
		Role:     "admin",
		Password: string(hashed),
	}
	if err := db.CreateUser(user); err != nil {
		return err
	}

	fmt.Printf("Admin user '%s' created successfully.\n", user.Email)
	return nil
}

func seed(c *cli.Context) error {
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Seed(); err != nil {
		return err
	}
	fmt.Println("Database seeded.")
	return nil
}

func listOrders(c *cli.Context) error {
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	orders, total, err := db.ListOrders("", c.Int("limit"), 0)
	if err != nil {
		return err
	}

	for _, o := range orders {
		fmt.Printf("%-12s %-18s %-10s %10s  %s\n",
			o.Ref, o.UserID, o.Status, pricing.FormatPrice(o.Total), pricing.FormatDate(o.CreatedAt))
	}
	fmt.Printf("%d of %d orders\n", len(orders), total)
	return nil
}
