package main

import (
	"context"
	"net/http"
	"os"

	"github.com/suggestapp/suggestions-backend/internal/api"
	"github.com/suggestapp/suggestions-backend/internal/config"
	"github.com/suggestapp/suggestions-backend/internal/database"
	"github.com/suggestapp/suggestions-backend/internal/handler"
	"github.com/suggestapp/suggestions-backend/internal/logger"
	"github.com/suggestapp/suggestions-backend/internal/middleware"
	"github.com/suggestapp/suggestions-backend/internal/store"
)

func main() {
	// Charger la configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connexion à PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Success("Connecté à PostgreSQL (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)

	// Créer les tables si nécessaire
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Error("Migration failed: %v", err)
		os.Exit(1)
	}

	// Construire les stores et les handlers (injection explicite, pas de global)
	h := handler.New(store.NewPGSuggestionStore(db), store.NewPGUserStore(db))

	// Initialiser le routeur et le middleware CORS
	router := api.SetupRouter(h)
	srv := middleware.CORSMiddleware(router)

	logger.Success("Serveur API démarré sur http://localhost:%s", cfg.Port)
	logEndpoints(cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

// logEndpoints affiche la liste des endpoints disponibles au démarrage
func logEndpoints(port string) {
	base := "http://localhost:" + port
	logger.Info("Endpoints disponibles:")
	for _, e := range []string{
		"GET    " + base + "/",
		"GET    " + base + "/suggestions",
		"GET    " + base + "/suggestions/{id}",
		"POST   " + base + "/suggestions",
		"PUT    " + base + "/suggestions/{id}",
		"DELETE " + base + "/suggestions/{id}",
		"POST   " + base + "/suggestions/{id}/like",
		"GET    " + base + "/suggestions/category/{category}",
		"GET    " + base + "/suggestions/status/{status}",
		"GET    " + base + "/users",
		"GET    " + base + "/users/{id}",
		"POST   " + base + "/users",
		"PUT    " + base + "/users/{id}",
		"DELETE " + base + "/users/{id}",
		"GET    " + base + "/users/role/{role}",
		"GET    " + base + "/users/status/{status}",
	} {
		logger.Info("  %s", e)
	}
}
