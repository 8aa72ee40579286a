// seed populates a development database with a demo user, a few restaurant
// locations and menu items, and sample reviews so the API has something to
// serve before any real search has run.
//
// Usage: go run ./scripts/seed
//
// Database connection: uses the standard PG* environment variables.
//
// Flags:
//
//	-wipe   Truncate all tables before seeding (default: false)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

func main() {
	wipe := flag.Bool("wipe", false, "Truncate all tables before seeding")
	flag.Parse()

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect (check PG* env vars): %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if *wipe {
		fmt.Println("Truncating tables...")
		_, err = conn.Exec(ctx, `TRUNCATE item_favorites, restaurant_favorites,
			item_reviews, restaurant_reviews, menu_items, restaurants, users CASCADE`)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to truncate: %v\n", err)
			os.Exit(1)
		}
	}

	if err := seed(ctx, conn); err != nil {
		fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seed complete.")
	fmt.Printf("Demo login: demo@vouch4food.example / %s\n", demoPassword)
}

func seed(ctx context.Context, conn *pgx.Conn) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var userID int64
	err = conn.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, image_url, address_zip, latitude, longitude)
		VALUES ('Demo', 'User', 'demo@vouch4food.example', $1,
			'https://cdn.vouch4food.example/images/default_user.jpg',
			'80202', 39.7392, -104.9903)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id`, string(hash)).Scan(&userID)
	if err != nil {
		return fmt.Errorf("insert demo user: %w", err)
	}

	restaurants := []struct {
		id, name, address, cuisines, phone string
	}{
		{"seed-chipotle-16th", "Chipotle Mexican Grill", "1600 California St, Denver, CO, 80202", "Mexican, Tex-Mex", "(303)-555-1234"},
		{"seed-snarfs-larimer", "Snarf's Sandwiches", "2000 Larimer St, Denver, CO, 80205", "Sandwiches", "(303)-555-2345"},
		{"seed-pho-colfax", "Pho 95", "1401 E Colfax Ave, Denver, CO, 80218", "Vietnamese, Noodles", "(303)-555-3456"},
	}
	for _, r := range restaurants {
		_, err = conn.Exec(ctx, `
			INSERT INTO restaurants (id, name, address, cuisines, phone, photo_url, latitude, longitude, monday_hours)
			VALUES ($1, $2, $3, $4, $5,
				'https://cdn.vouch4food.example/images/default_restaurant.jpg',
				39.7392, -104.9903, '11:00-21:00')
			ON CONFLICT (id) DO NOTHING`,
			r.id, r.name, r.address, r.cuisines, r.phone)
		if err != nil {
			return fmt.Errorf("insert restaurant %s: %w", r.id, err)
		}
	}

	items := []struct {
		id    int64
		title string
		chain string
	}{
		{800001, "Burrito Bowl", "Chipotle Mexican Grill"},
		{800002, "Chicken Burrito", "Chipotle Mexican Grill"},
		{800003, "Italian Sandwich", "Snarf's Sandwiches"},
	}
	for _, item := range items {
		_, err = conn.Exec(ctx, `
			INSERT INTO menu_items (id, title, restaurant_chain, image_url)
			VALUES ($1, $2, $3, 'https://cdn.vouch4food.example/images/default_item.jpg')
			ON CONFLICT (id) DO NOTHING`,
			item.id, item.title, item.chain)
		if err != nil {
			return fmt.Errorf("insert menu item %d: %w", item.id, err)
		}
	}

	_, err = conn.Exec(ctx, `
		INSERT INTO restaurant_reviews (author_id, restaurant_id, title, content)
		VALUES ($1, 'seed-chipotle-16th', 'Reliable lunch', 'Quick line, consistent bowls.')
		ON CONFLICT DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	_, err = conn.Exec(ctx, `
		INSERT INTO restaurant_favorites (author_id, restaurant_id)
		VALUES ($1, 'seed-snarfs-larimer')
		ON CONFLICT DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}

	return nil
}
