package http

import (
	"net/http"

	"healthcare-backend/internal/delivery/http/handler"
	"healthcare-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	feedbackHandler    *handler.FeedbackHandler
	toDoHandler        *handler.ToDoHandler
	vitalsHandler      *handler.VitalsHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	feedbackHandler *handler.FeedbackHandler,
	toDoHandler *handler.ToDoHandler,
	vitalsHandler *handler.VitalsHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		feedbackHandler:    feedbackHandler,
		toDoHandler:        toDoHandler,
		vitalsHandler:      vitalsHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests are answered even for paths without an OPTIONS route.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/confirm-email/{key}", r.authHandler.ConfirmEmail).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Authenticated user routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/users/me", r.userHandler.EditMe).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/avatar", r.userHandler.UploadAvatar).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/profile-picture", r.userHandler.UploadProfilePicture).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/profile-completion", r.userHandler.GetMyProfileCompletion).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}/details", r.userHandler.GetDetails).Methods(http.MethodGet)

	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/like", r.doctorHandler.LikeDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	protected.HandleFunc("/feedbacks", r.feedbackHandler.CreateFeedback).Methods(http.MethodPost)
	protected.HandleFunc("/feedbacks", r.feedbackHandler.GetMyFeedbacks).Methods(http.MethodGet)

	protected.HandleFunc("/todos", r.toDoHandler.CreateToDo).Methods(http.MethodPost)
	protected.HandleFunc("/todos", r.toDoHandler.GetMyToDos).Methods(http.MethodGet)
	protected.HandleFunc("/todos/{id}", r.toDoHandler.UpdateToDo).Methods(http.MethodPatch)
	protected.HandleFunc("/todos/{id}", r.toDoHandler.DeleteToDo).Methods(http.MethodDelete)

	protected.HandleFunc("/vitals", r.vitalsHandler.RecordVitals).Methods(http.MethodPost)
	protected.HandleFunc("/vitals", r.vitalsHandler.GetMyVitals).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/profile-completion", r.userHandler.ListProfileCompletion).Methods(http.MethodGet)
	admin.HandleFunc("/feedbacks", r.feedbackHandler.GetAllFeedbacks).Methods(http.MethodGet)
	admin.HandleFunc("/feedbacks/{id}/reply", r.feedbackHandler.ReplyFeedback).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
