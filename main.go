package main

import (
	"log"
	"net/http"
	"os"

	"github.com/JBlizzard-sketch/Autoscraper/app/cmd"
	"github.com/JBlizzard-sketch/Autoscraper/app/configs"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/JBlizzard-sketch/Autoscraper/app/routes"
	"github.com/JBlizzard-sketch/Autoscraper/app/utils/sessions"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	logger, err := newLogger(env.AppEnv)
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()

	stores, err := buildStores(env, logger)
	if err != nil {
		log.Fatal("failed to initialize stores:", err)
	}

	sessionStore, csrfKey := buildSessions(env)
	log.Println("✅ Session store initialized.")

	router := routes.NewRouter(stores, routes.Options{
		AppEnv:   env.AppEnv,
		CSRFKey:  csrfKey,
		Sessions: sessionStore,
		Logger:   logger,
	})

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildStores picks the persistence backend from CATALOG_STORE:
// "memory" serves everything from CSV exports without a database,
// "parts" reads the denormalized scraper tables, anything else uses
// the normalized schema.
func buildStores(env configs.ENV, logger *zap.Logger) (routes.Stores, error) {
	if env.CatalogStore == "memory" {
		mem := repositories.NewMemoryStore()
		dataDir := env.DataDir
		if dataDir == "" {
			dataDir = "app/db/data"
		}
		if err := mem.LoadCSVDir(dataDir); err != nil {
			return routes.Stores{}, err
		}
		mem.SeedSampleBlog()
		log.Println("✅ In-memory catalog loaded from", dataDir)
		return routes.Stores{Catalog: mem, Carts: mem, Orders: mem, Blog: mem}, nil
	}

	db, err := configs.OpenConnection()
	if err != nil {
		return routes.Stores{}, err
	}
	log.Println("✅ Database connected.")

	var catalog repositories.CatalogStore
	if env.CatalogStore == "parts" {
		catalog = repositories.NewPartsCatalog(db, logger)
	} else {
		catalog = repositories.NewLegacyCatalog(db, logger)
	}

	return routes.Stores{
		Catalog: catalog,
		Carts:   repositories.NewCartRepository(db),
		Orders:  repositories.NewOrderRepository(db),
		Blog:    repositories.NewBlogRepository(db),
	}, nil
}

func buildSessions(env configs.ENV) (*sessions.Store, []byte) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		if env.AppEnv == "production" {
			log.Fatal("session keys are required in production:", err)
		}
		log.Println("Warning: using generated session keys, shopper sessions will not survive restarts")
		keys = &configs.SessionKeys{
			AuthKey: securecookie.GenerateRandomKey(64),
			EncKey:  securecookie.GenerateRandomKey(32),
		}
	}
	csrfKey := keys.AuthKey
	if len(csrfKey) > 32 {
		csrfKey = csrfKey[:32]
	}
	return sessions.NewStore(keys.AuthKey, keys.EncKey), csrfKey
}
