package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rbarbosa/accounts-api/internal/api/middleware"
	"github.com/rbarbosa/accounts-api/internal/domain"
	"github.com/rbarbosa/accounts-api/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Request field names follow the published contract, which the mobile
// app already speaks.

type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type UpdateRequest struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

type UserResponse struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Preencha todos os campos!")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Preencha todos os campos!")
		return
	}

	_, err := h.accountService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email já cadastrado!")
			return
		}
		log.Printf("ERROR [account.Register] %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao registrar usuário")
		return
	}

	respondMessage(w, http.StatusCreated, "Usuário criado com sucesso!")
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Preencha todos os campos!")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Preencha todos os campos!")
		return
	}

	token, err := h.accountService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "Usuário não encontrado!")
		case errors.Is(err, domain.ErrWrongPassword):
			respondError(w, http.StatusUnauthorized, "Senha incorreta")
		default:
			log.Printf("ERROR [account.Login] %v", err)
			respondError(w, http.StatusInternalServerError, "Erro ao fazer login!")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Login bem sucedido!",
		"token":   token,
	})
}

func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Token não fornecido!")
		return
	}

	user, err := h.accountService.Profile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Usuário não encontrado.")
			return
		}
		log.Printf("ERROR [account.Profile] %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao buscar dados do usuário!")
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		User: UserResponse{Name: user.Name, Email: user.Email},
	})
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Token não fornecido!")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Informe nome ou email para atualizar")
		return
	}

	if req.Name == "" && req.Email == "" {
		respondError(w, http.StatusBadRequest, "Informe nome ou email para atualizar")
		return
	}

	err := h.accountService.UpdateProfile(r.Context(), claims.UserID, service.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email já cadastrado!")
			return
		}
		log.Printf("ERROR [account.Update] %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao atualizar usuário!")
		return
	}

	respondMessage(w, http.StatusOK, "Dados atualizados com sucesso!")
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Token não fornecido!")
		return
	}

	err := h.accountService.DeleteAccount(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Usuário não encontrado.")
			return
		}
		log.Printf("ERROR [account.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao deletar usuário!")
		return
	}

	respondMessage(w, http.StatusOK, "Dados removidos com sucesso!")
}
