package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/aserravalle/travelling-salesman-backend/internal/adapters/cache"
	"github.com/aserravalle/travelling-salesman-backend/internal/adapters/geocode"
	"github.com/aserravalle/travelling-salesman-backend/internal/adapters/notify"
	"github.com/aserravalle/travelling-salesman-backend/internal/adapters/travel"
	"github.com/aserravalle/travelling-salesman-backend/internal/api"
	"github.com/aserravalle/travelling-salesman-backend/internal/config"
	"github.com/aserravalle/travelling-salesman-backend/internal/platform/db"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, Postgres/Redis caches, SES)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	dispatch := config.LoadDispatch()

	geocodeCache := newGeocodeCache()
	geocoder := geocode.NewCachedGeocoder(
		geocode.NewNominatimGeocoder(config.Get("NOMINATIM_URL", "")),
		geocodeCache,
	)

	speed := config.GetInt("TRAVEL_SPEED_KMH", int(travel.DefaultSpeedKmh))
	provider := travel.NewHaversineEstimator(float64(speed))

	router := api.NewRouter(provider, geocoder, newNotifier(), dispatch)

	// Timeouts are tuned for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newGeocodeCache picks the cache backend: Redis when REDIS_ADDR is set,
// Postgres when DATABASE_URL is set, otherwise an in-process map.
func newGeocodeCache() ports.GeocodeCache {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		c := cache.NewRedisGeocodeCache(addr, os.Getenv("REDIS_PASSWORD"), config.GetInt("REDIS_DB", 0))
		if err := c.Ping(context.Background()); err != nil {
			log.Fatal(err)
		}
		log.Printf("geocode cache backend=redis addr=%s", addr)
		return c
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := cache.InitSchema(conn); err != nil {
			log.Fatal(err)
		}
		log.Println("geocode cache backend=postgres")
		return cache.NewSQLGeocodeCache(conn)
	}

	log.Println("geocode cache backend=memory")
	return cache.NewMemoryGeocodeCache()
}

// newNotifier wires the SES contact notifier when configured; a nil
// notifier disables the contact endpoint with a 503.
func newNotifier() ports.Notifier {
	region := os.Getenv("AWS_REGION")
	from := os.Getenv("CONTACT_FROM_EMAIL")
	to := os.Getenv("CONTACT_TO_EMAIL")
	if region == "" || from == "" || to == "" {
		log.Println("contact notifier disabled (AWS_REGION, CONTACT_FROM_EMAIL, CONTACT_TO_EMAIL not all set)")
		return nil
	}

	notifier, err := notify.NewSESNotifier(context.Background(), region, from, to)
	if err != nil {
		log.Fatal(err)
	}
	return notifier
}
