package http

import (
	"net/http"

	"symptocare-backend/internal/delivery/http/handler"
	"symptocare-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	applicationHandler *handler.ApplicationHandler
	appointmentHandler *handler.AppointmentHandler
	medicineHandler    *handler.MedicineHandler
	feedHandler        *handler.FeedHandler
	symptomHandler     *handler.SymptomHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	applicationHandler *handler.ApplicationHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicineHandler *handler.MedicineHandler,
	feedHandler *handler.FeedHandler,
	symptomHandler *handler.SymptomHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		applicationHandler: applicationHandler,
		appointmentHandler: appointmentHandler,
		medicineHandler:    medicineHandler,
		feedHandler:        feedHandler,
		symptomHandler:     symptomHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register-doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public doctor directory (verified doctors only)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)

	// Doctor self-service (protected - doctor only)
	doctorSelf := api.PathPrefix("/doctors/me").Subrouter()
	doctorSelf.Use(r.authMiddleware.Authenticate)
	doctorSelf.Use(middleware.RequireDoctor)
	doctorSelf.HandleFunc("", r.doctorHandler.UpdateProfile).Methods(http.MethodPut)
	doctorSelf.HandleFunc("/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)

	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Symptom analysis (public)
	api.HandleFunc("/symptoms/analyze", r.symptomHandler.Analyze).Methods(http.MethodPost)

	// Medicine catalog (public)
	api.HandleFunc("/medicines", r.medicineHandler.ListMedicines).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.GetMedicine).Methods(http.MethodGet)

	// Appointments (protected - patient)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Orders (protected)
	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(r.authMiddleware.Authenticate)
	orders.HandleFunc("", r.medicineHandler.PlaceOrder).Methods(http.MethodPost)
	orders.HandleFunc("", r.medicineHandler.GetMyOrders).Methods(http.MethodGet)

	// Wellness feed (protected)
	feed := api.PathPrefix("/feed").Subrouter()
	feed.Use(r.authMiddleware.Authenticate)
	feed.HandleFunc("", r.feedHandler.CreatePost).Methods(http.MethodPost)
	feed.HandleFunc("", r.feedHandler.ListPosts).Methods(http.MethodGet)
	feed.HandleFunc("/{id}/like", r.feedHandler.LikePost).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Application review (admin)
	admin.HandleFunc("/applications", r.applicationHandler.ListApplications).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{id}", r.applicationHandler.GetApplication).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{id}/decision", r.applicationHandler.Decide).Methods(http.MethodPost)

	// Medicine catalog management (admin)
	admin.HandleFunc("/medicines", r.medicineHandler.CreateMedicine).Methods(http.MethodPost)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.UpdateMedicine).Methods(http.MethodPut)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.DeleteMedicine).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
