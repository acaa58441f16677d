package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/pokedex-service/internal/config"
	"github.com/pribylovaa/pokedex-service/internal/http/handlers"
	"github.com/pribylovaa/pokedex-service/internal/http/middleware"
	"github.com/pribylovaa/pokedex-service/internal/ratelimit"
	"github.com/pribylovaa/pokedex-service/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, limiter ratelimit.Limiter, cfg config.Config, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, limiter, cfg)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// pokemons
	r.Get("/pokemons", h.ListPokemons)
	r.Post("/pokemons", h.CreatePokemon)
	r.Delete("/pokemons", h.DeletePokemon)
	r.Get("/pokemons/search", h.SearchPokemon)
	r.Get("/pokemons/{id}", h.PokemonByID)

	// справочники и живость
	r.Get("/types", h.ListTypes)
	r.Get("/health", h.Health)
}
