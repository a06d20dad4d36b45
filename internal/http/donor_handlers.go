package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/givehub/backend/internal/domain"
	"github.com/givehub/backend/internal/security"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Register godoc
// @Summary Register donor
// @Tags donors
// @Accept json
// @Produce json
// @Param payload body registerReq true "register"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/donors/register [post]
func (h *Handler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case in.Name == "" || email == "" || in.Phone == "" || in.Address == "":
		fail(c, http.StatusBadRequest, "name, email, phone and address are required")
		return
	case !domain.ValidEmail(email):
		fail(c, http.StatusBadRequest, "please provide a valid email")
		return
	case len(in.Password) < 6:
		fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		failInternal(c, "hash password", err)
		return
	}
	d := &domain.Donor{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
	}
	if err := h.Store.CreateDonor(c.Request.Context(), d); err != nil {
		if isDup(err) {
			fail(c, http.StatusBadRequest, "donor already exists")
			return
		}
		failInternal(c, "create donor", err)
		return
	}

	tok, err := security.MakeToken(h.JWTSecret, d.ID.Hex(), h.TokenTTL)
	if err != nil {
		failInternal(c, "sign token", err)
		return
	}
	h.notify(c, domain.NotifSystem, "New donor registered", d.Name+" joined the platform")
	ok(c, http.StatusCreated, gin.H{"donor": d, "token": tok})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Donor login
// @Tags donors
// @Accept json
// @Produce json
// @Param payload body loginReq true "login"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/donors/login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		fail(c, http.StatusBadRequest, "please provide email and password")
		return
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	d, err := h.Store.FindDonorByEmail(c.Request.Context(), email)
	if err != nil {
		failInternal(c, "find donor", err)
		return
	}
	// Unknown email and wrong password answer identically.
	if d == nil || !security.CheckPassword(d.PasswordHash, in.Password) {
		fail(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}
	tok, err := security.MakeToken(h.JWTSecret, d.ID.Hex(), h.TokenTTL)
	if err != nil {
		failInternal(c, "sign token", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"donor": d, "token": tok})
}

// GetProfile godoc
// @Summary Donor profile
// @Tags donors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/donors/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	p := currentPrincipal(c)
	d, err := h.Store.FindDonorByID(c.Request.Context(), p.ID)
	if err != nil {
		failInternal(c, "find donor", err)
		return
	}
	if d == nil {
		fail(c, http.StatusNotFound, "donor not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"donor": d})
}

type profilePatch struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// UpdateProfile applies only the supplied fields; a new token is returned
// so the client can rotate its stored one.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var in profilePatch
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	fields := bson.M{}
	if v := strings.TrimSpace(in.Name); v != "" {
		fields["name"] = v
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" {
		if !domain.ValidEmail(v) {
			fail(c, http.StatusBadRequest, "please provide a valid email")
			return
		}
		fields["email"] = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		fields["phone"] = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		fields["address"] = v
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			fail(c, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		hash, err := security.HashPassword(in.Password)
		if err != nil {
			failInternal(c, "hash password", err)
			return
		}
		fields["password_hash"] = hash
	}
	if len(fields) == 0 {
		fail(c, http.StatusBadRequest, "nothing to update")
		return
	}

	p := currentPrincipal(c)
	d, err := h.Store.UpdateDonor(c.Request.Context(), p.ID, fields)
	if err != nil {
		if isDup(err) {
			fail(c, http.StatusBadRequest, "email already in use")
			return
		}
		failInternal(c, "update donor", err)
		return
	}
	if d == nil {
		fail(c, http.StatusNotFound, "donor not found")
		return
	}
	tok, err := security.MakeToken(h.JWTSecret, d.ID.Hex(), h.TokenTTL)
	if err != nil {
		failInternal(c, "sign token", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"donor": d, "token": tok})
}
