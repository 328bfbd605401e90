package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	usersvc "github.com/moonvest/investd/internal/app/service/user"
	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/response"
)

type upsertUserRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// @Summary      Register or refresh a user profile
// @Tags         Users
// @Accept       json
// @Produce      json
// @Router       /api/users [post]
func ApiUpsertUser(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.Fail("Invalid request: "+err.Error()))
			return
		}
		u := &models.User{
			ID:        req.UserID,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		if err := svc.Upsert(c.Request.Context(), u); err != nil {
			c.JSON(http.StatusOK, response.Fail("Error saving user"))
			return
		}
		c.JSON(http.StatusOK, response.OKMsg("User saved successfully", gin.H{"user_id": u.ID}))
	}
}

// @Summary      Fetch a user profile
// @Tags         Users
// @Produce      json
// @Router       /api/users/{userId} [get]
func ApiGetUser(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, response.Fail("User not found"))
				return
			}
			c.JSON(http.StatusOK, response.Fail("Error fetching user"))
			return
		}
		c.JSON(http.StatusOK, response.OK(u))
	}
}

// @Summary      Fetch a user's balance
// @Tags         Users
// @Produce      json
// @Router       /api/users/{userId}/balance [get]
func ApiGetUserBalance(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		balance, err := svc.GetBalance(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, response.Fail("User not found"))
				return
			}
			c.JSON(http.StatusOK, response.Fail("Error fetching balance"))
			return
		}
		c.JSON(http.StatusOK, response.OK(gin.H{"user_id": userID, "balance": balance}))
	}
}

// @Summary      List a user's deposit requests
// @Tags         Users
// @Produce      json
// @Router       /api/users/{userId}/deposits [get]
func ApiGetUserDeposits(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListDeposits(c.Request.Context(), c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusOK, response.Fail("Error fetching deposits"))
			return
		}
		c.JSON(http.StatusOK, response.OKList(items))
	}
}

// @Summary      List a user's withdrawal requests
// @Tags         Users
// @Produce      json
// @Router       /api/users/{userId}/withdrawals [get]
func ApiGetUserWithdrawals(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListWithdrawals(c.Request.Context(), c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusOK, response.Fail("Error fetching withdrawals"))
			return
		}
		c.JSON(http.StatusOK, response.OKList(items))
	}
}

func RegisterUserRoutes(r gin.IRouter, svc *usersvc.Service) {
	r.POST("/users", ApiUpsertUser(svc))
	r.GET("/users/:userId", ApiGetUser(svc))
	r.GET("/users/:userId/balance", ApiGetUserBalance(svc))
	r.GET("/users/:userId/deposits", ApiGetUserDeposits(svc))
	r.GET("/users/:userId/withdrawals", ApiGetUserWithdrawals(svc))
}
