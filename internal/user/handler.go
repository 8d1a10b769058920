package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{userService: userService}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	newUser, err := h.userService.SignUp(req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			respondError(w, http.StatusBadRequest, "Email already exists!")
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNameTooLong), errors.Is(err, ErrInvalidEmail):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Error creating user: %v", err)
			respondError(w, http.StatusInternalServerError, "Error creating user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    newUser,
	})
}

func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	signedIn, err := h.userService.SignIn(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "User not found!")
		case errors.Is(err, ErrAlreadyLoggedIn):
			respondError(w, http.StatusBadRequest, "User already signed in!")
		case errors.Is(err, ErrNameRequired):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Error signing in: %v", err)
			respondError(w, http.StatusInternalServerError, "Error signing in")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Signed in successfully",
		"user":    signedIn,
	})
}

func (h *Handler) HandleGetUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := h.userService.ListUsers()
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.userService.DeleteUser(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Error deleting user: %v", err)
		respondError(w, http.StatusInternalServerError, "Error deleting user")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
