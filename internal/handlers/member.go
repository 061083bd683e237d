package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"recipebook/internal/models"
	"recipebook/internal/store"
)

// memberFields is the field set shared by registration and profile update.
// Validation rules are identical on both paths.
type memberFields struct {
	Name        string `json:"name" validate:"required"`
	StdID       string `json:"stdID" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Email       string `json:"email" validate:"required,member_email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,member_phone"`
	Address     string `json:"address" validate:"required"`
}

func (f *memberFields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.StdID = strings.TrimSpace(f.StdID)
	f.Degree = strings.TrimSpace(f.Degree)
	f.Country = strings.TrimSpace(f.Country)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.Address = strings.TrimSpace(f.Address)
}

type registerRequest struct {
	memberFields
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// RegisterMember creates a new member with a bcrypt password hash. The email
// pre-check returns a clean conflict; the unique indexes are the authority
// when the check races with a concurrent insert. The password is hashed
// exactly as supplied so login compares the same bytes.
func RegisterMember(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		req.normalize()
		if details := validateStruct(&req); details != nil {
			respondValidationError(c, details)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		existing, err := members.FindByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Println("[MEMBER] [ERROR] register email lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while registering the member"})
			return
		}
		if existing != nil {
			log.Println("[MEMBER] [ERROR] register email exists:", req.Email)
			c.JSON(http.StatusConflict, gin.H{"message": "member with this email already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[MEMBER] [ERROR] register password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while registering the member"})
			return
		}

		member := models.Member{
			Name:        req.Name,
			StdID:       req.StdID,
			Degree:      req.Degree,
			Password:    string(hash),
			Country:     req.Country,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
			CreatedAt:   time.Now(),
		}

		if _, err := members.Insert(ctx, member); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				log.Println("[MEMBER] [ERROR] register duplicate key:", req.Email)
				c.JSON(http.StatusConflict, gin.H{"message": "member already exists"})
				return
			}
			log.Println("[MEMBER] [ERROR] register insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while registering the member"})
			return
		}

		log.Println("[MEMBER] [INFO] member registered:", req.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Member registered successfully"})
	}
}

// LoginMember verifies the stdID/password pair and issues an access token.
// The two failure messages are deliberately distinguishable, matching the
// documented behavior of the API.
func LoginMember(members store.MemberStore, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		member, err := members.FindByStdID(ctx, strings.TrimSpace(req.StudentID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Println("[MEMBER] [ERROR] login unknown student ID")
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid student ID"})
				return
			}
			log.Println("[MEMBER] [ERROR] login lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while logging in"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
			log.Println("[MEMBER] [ERROR] login invalid password for:", member.StdID)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid password"})
			return
		}

		accessToken, err := issueMemberToken(member, jwtSecret, accessTTL)
		if err != nil {
			log.Println("[MEMBER] [ERROR] login token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while logging in"})
			return
		}

		log.Println("[MEMBER] [INFO] login succeeded:", member.StdID)
		c.JSON(http.StatusOK, gin.H{
			"message":     "Login successfully",
			"accessToken": accessToken,
			"member": gin.H{
				"id":    member.ID.Hex(),
				"name":  member.Name,
				"stdID": member.StdID,
				"email": member.Email,
			},
		})
	}
}

func issueMemberToken(member *models.Member, secret string, accessTTL time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"memberId": member.ID.Hex(),
		"stdID":    member.StdID,
		"exp":      time.Now().Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetMembers returns the full member directory, unpaginated.
func GetMembers(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := members.List(ctx)
		if err != nil {
			log.Println("[MEMBER] [ERROR] list members failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while retrieving members"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetMemberByStdID looks a member up by business key.
func GetMemberByStdID(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		member, err := members.FindByStdID(ctx, strings.TrimSpace(c.Param("stdID")))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
				return
			}
			log.Println("[MEMBER] [ERROR] member lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// GetMe returns the member identified by the validated access token.
func GetMe(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID := c.GetString("memberId")
		if memberID == "" {
			log.Println("[MEMBER] [ERROR] memberId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		member, err := members.FindByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
				return
			}
			log.Println("[MEMBER] [ERROR] get me failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// UpdateMember overwrites the seven profile fields in place. Validation runs
// before the lookup; the password is never touched by this operation.
func UpdateMember(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req memberFields
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		req.normalize()
		if details := validateStruct(&req); details != nil {
			respondValidationError(c, details)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := members.UpdateProfile(ctx, c.Param("id"), store.MemberProfile{
			Name:        req.Name,
			StdID:       req.StdID,
			Degree:      req.Degree,
			Country:     req.Country,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
			case errors.Is(err, store.ErrDuplicate):
				c.JSON(http.StatusConflict, gin.H{"message": "email or phone number already in use"})
			default:
				log.Println("[MEMBER] [ERROR] update failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while updating the member"})
			}
			return
		}

		log.Println("[MEMBER] [INFO] member updated:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Member updated successfully"})
	}
}

// DeleteMember removes a member record. Deletion is physical.
func DeleteMember(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := members.Delete(ctx, c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
				return
			}
			log.Println("[MEMBER] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an error occurred while deleting the member"})
			return
		}

		log.Println("[MEMBER] [INFO] member deleted:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
	}
}

// ResetPassword hashes the new password and overwrites the stored hash for
// the given stdID. The operation is identifier-driven and unauthenticated;
// any re-authentication policy belongs to the caller.
func ResetPassword(members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[MEMBER] [ERROR] reset password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := members.UpdatePassword(ctx, strings.TrimSpace(c.Param("stdID")), string(hash)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "student not found"})
				return
			}
			log.Println("[MEMBER] [ERROR] reset password failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		log.Println("[MEMBER] [INFO] password reset for:", c.Param("stdID"))
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
	}
}
