package http

import (
	"github.com/AleksandrYakovlevgtn/shareit/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every API route onto a gorilla/mux router.
func NewRouter(
	userSvc service.UserService,
	itemSvc service.ItemService,
	bookingSvc service.BookingService,
	requestSvc service.ItemRequestService,
) *mux.Router {
	users := NewUserHandler(userSvc)
	items := NewItemHandler(itemSvc)
	bookings := NewBookingHandler(bookingSvc)
	requests := NewItemRequestHandler(requestSvc)

	router := mux.NewRouter()
	router.Use(RequestLogging)

	router.HandleFunc("/users", users.Create).Methods("POST")
	router.HandleFunc("/users", users.List).Methods("GET")
	router.HandleFunc("/users/{id}", users.GetByID).Methods("GET")
	router.HandleFunc("/users/{id}", users.Update).Methods("PATCH")
	router.HandleFunc("/users/{id}", users.Delete).Methods("DELETE")

	router.HandleFunc("/items", items.Create).Methods("POST")
	router.HandleFunc("/items", items.ListByOwner).Methods("GET")
	router.HandleFunc("/items/search", items.Search).Methods("GET")
	router.HandleFunc("/items/{id}", items.GetByID).Methods("GET")
	router.HandleFunc("/items/{id}", items.Update).Methods("PATCH")
	router.HandleFunc("/items/{id}", items.Delete).Methods("DELETE")
	router.HandleFunc("/items/{id}/comment", items.AddComment).Methods("POST")

	router.HandleFunc("/bookings", bookings.Create).Methods("POST")
	router.HandleFunc("/bookings", bookings.ListByBooker).Methods("GET")
	router.HandleFunc("/bookings/owner", bookings.ListByOwner).Methods("GET")
	router.HandleFunc("/bookings/{id}", bookings.GetByID).Methods("GET")
	router.HandleFunc("/bookings/{id}", bookings.SetApproval).Methods("PATCH")

	router.HandleFunc("/requests", requests.Create).Methods("POST")
	router.HandleFunc("/requests", requests.ListOwn).Methods("GET")
	router.HandleFunc("/requests/all", requests.ListAll).Methods("GET")
	router.HandleFunc("/requests/{id}", requests.GetByID).Methods("GET")

	return router
}
