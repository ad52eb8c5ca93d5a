package http

import (
	"net/http"

	"kbeauty-insider/internal/delivery/http/handler"
	"kbeauty-insider/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	procedureHandler    *handler.ProcedureHandler
	clinicHandler       *handler.ClinicHandler
	reservationHandler  *handler.ReservationHandler
	stampHandler        *handler.StampHandler
	profileHandler      *handler.ProfileHandler
	exchangeRateHandler *handler.ExchangeRateHandler
	authMiddleware      *middleware.AuthMiddleware
	adminMiddleware     *middleware.AdminMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	procedureHandler *handler.ProcedureHandler,
	clinicHandler *handler.ClinicHandler,
	reservationHandler *handler.ReservationHandler,
	stampHandler *handler.StampHandler,
	profileHandler *handler.ProfileHandler,
	exchangeRateHandler *handler.ExchangeRateHandler,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		procedureHandler:    procedureHandler,
		clinicHandler:       clinicHandler,
		reservationHandler:  reservationHandler,
		stampHandler:        stampHandler,
		profileHandler:      profileHandler,
		exchangeRateHandler: exchangeRateHandler,
		authMiddleware:      authMiddleware,
		adminMiddleware:     adminMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/procedures", r.procedureHandler.GetPublicProcedures).Methods(http.MethodGet)
	api.HandleFunc("/clinics", r.clinicHandler.GetPublicClinics).Methods(http.MethodGet)
	api.HandleFunc("/exchange-rate", r.exchangeRateHandler.GetExchangeRate).Methods(http.MethodGet)

	// Public booking form; a bearer token is optional and only links the
	// reservation to a user when valid.
	reservations := api.PathPrefix("/reservations").Subrouter()
	reservations.Use(r.authMiddleware.Identify)
	reservations.HandleFunc("", r.reservationHandler.CreateReservation).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.adminMiddleware.RequireAdmin)

	admin.HandleFunc("/me", r.profileHandler.Me).Methods(http.MethodGet)

	// Procedure management
	admin.HandleFunc("/procedures", r.procedureHandler.GetAllProcedures).Methods(http.MethodGet)
	admin.HandleFunc("/procedures", r.procedureHandler.CreateProcedures).Methods(http.MethodPost)
	admin.HandleFunc("/procedures/{id}", r.procedureHandler.UpdateProcedure).Methods(http.MethodPatch)
	admin.HandleFunc("/procedures/{id}", r.procedureHandler.DeleteProcedure).Methods(http.MethodDelete)

	// Clinic management
	admin.HandleFunc("/clinics", r.clinicHandler.GetAllClinics).Methods(http.MethodGet)
	admin.HandleFunc("/clinics", r.clinicHandler.CreateClinics).Methods(http.MethodPost)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.UpdateClinic).Methods(http.MethodPatch)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.DeleteClinic).Methods(http.MethodDelete)

	// Reservation management
	admin.HandleFunc("/reservations", r.reservationHandler.GetAllReservations).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", r.reservationHandler.UpdateReservationStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", r.reservationHandler.DeleteReservation).Methods(http.MethodDelete)

	// Stamp management
	admin.HandleFunc("/stamps", r.stampHandler.GetAllStamps).Methods(http.MethodGet)
	admin.HandleFunc("/stamps/issue", r.stampHandler.IssueStamp).Methods(http.MethodPost)
	admin.HandleFunc("/stamps/{id}", r.stampHandler.DeleteStamp).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
