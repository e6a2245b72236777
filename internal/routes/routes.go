package routes

import (
	"net/http"

	"fiscalblog/internal/handlers"
	"fiscalblog/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// localePath принимает "es", "en-GB", "ca_ES"; нормализацию и 400 делает middleware.Locale.
const localePath = "/{locale:[a-zA-Z]{2}(?:[-_][a-zA-Z]{2})?}"

func InitRoutes(
	router *mux.Router,
	blogH *handlers.BlogHandler,
	clusterH *handlers.ClusterHandler,
	adminH *handlers.AdminHandler, // nil — админка выключена
	jwtSecret string,
	defaultLocale string,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	router.HandleFunc("/healthz", handlers.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.Locale(defaultLocale))

	public.HandleFunc("/posts", blogH.ListPosts).Methods(http.MethodGet)
	public.HandleFunc("/posts/{id}/related", blogH.GetRelated).Methods(http.MethodGet)
	public.HandleFunc("/categories", blogH.Categories).Methods(http.MethodGet)
	public.HandleFunc("/tags", blogH.Tags).Methods(http.MethodGet)
	public.HandleFunc("/clusters", clusterH.ListClusters).Methods(http.MethodGet)

	public.HandleFunc(localePath+"/posts", blogH.ListPostsWithContent).Methods(http.MethodGet)
	public.HandleFunc(localePath+"/posts/{slug}", blogH.GetPost).Methods(http.MethodGet)
	public.HandleFunc(localePath+"/clusters/{id}", clusterH.GetCluster).Methods(http.MethodGet)

	if adminH == nil {
		return
	}

	// --- Админка ---
	api.HandleFunc("/admin/login", adminH.Login).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.HandleFunc("/integrity", adminH.Integrity).Methods(http.MethodGet)
	admin.HandleFunc("/reload", adminH.Reload).Methods(http.MethodPost)
	admin.HandleFunc("/cache/flush", adminH.FlushCache).Methods(http.MethodPost)
}
