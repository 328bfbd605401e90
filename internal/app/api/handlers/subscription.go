package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	subsvc "github.com/moonvest/investd/internal/app/service/subscription"
	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/response"
	"github.com/moonvest/investd/pkg/types"
)

type createSubscriptionRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	UserUsername  string  `json:"user_username"`
	UserFirstName string  `json:"user_first_name"`
	UserLastName  string  `json:"user_last_name"`
	PackageName   string  `json:"package_name" binding:"required"`
	PackagePrice  float64 `json:"package_price" binding:"required,gt=0"`
	DailyReturn   string  `json:"daily_return" binding:"required"`
	DurationDays  int     `json:"duration_days" binding:"required,gt=0"`
	TotalReturn   float64 `json:"total_return" binding:"required"`
}

// insufficientBalancePayload is the failure body for rejected purchases and
// withdrawals.
type insufficientBalancePayload struct {
	CurrentBalance float64 `json:"current_balance"`
	RequiredAmount float64 `json:"required_amount"`
}

// @Summary      Purchase an investment package
// @Tags         Subscriptions
// @Accept       json
// @Produce      json
// @Router       /api/subscriptions [post]
func ApiCreateSubscription(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.Fail("Invalid request: "+err.Error()))
			return
		}

		sub, err := svc.Create(c.Request.Context(), &subsvc.CreateRequest{
			UserID:        req.UserID,
			UserUsername:  req.UserUsername,
			UserFirstName: req.UserFirstName,
			UserLastName:  req.UserLastName,
			PackageName:   req.PackageName,
			PackagePrice:  req.PackagePrice,
			DailyReturn:   types.Percent(req.DailyReturn),
			DurationDays:  req.DurationDays,
			TotalReturn:   req.TotalReturn,
		})
		if err != nil {
			var insufficient *models.InsufficientBalanceError
			switch {
			case errors.As(err, &insufficient):
				c.JSON(http.StatusOK, response.FailData("Insufficient balance", insufficientBalancePayload{
					CurrentBalance: insufficient.CurrentBalance,
					RequiredAmount: insufficient.Required,
				}))
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusOK, response.Fail("User not found"))
			default:
				c.JSON(http.StatusOK, response.Fail("Error creating subscription"))
			}
			return
		}

		c.JSON(http.StatusOK, response.OKMsg("Subscription created successfully", gin.H{
			"subscription_id": sub.ID,
		}))
	}
}

// @Summary      List a user's subscriptions, settling accrued earnings first
// @Tags         Subscriptions
// @Produce      json
// @Router       /api/subscriptions/user/{userId} [get]
func ApiGetUserSubscriptions(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		views, err := svc.GetUserSubscriptions(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusOK, response.Fail("Error fetching subscriptions"))
			return
		}
		c.JSON(http.StatusOK, response.OKList(views))
	}
}

// @Summary      Fetch one subscription, settling accrued earnings first
// @Tags         Subscriptions
// @Produce      json
// @Router       /api/subscriptions/{subscriptionId} [get]
func ApiGetSubscription(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.GetSubscription(c.Request.Context(), c.Param("subscriptionId"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, response.Fail("Subscription not found"))
				return
			}
			c.JSON(http.StatusOK, response.Fail("Error fetching subscription"))
			return
		}
		c.JSON(http.StatusOK, response.OK(view))
	}
}

func RegisterSubscriptionRoutes(r gin.IRouter, svc *subsvc.Service) {
	r.POST("/subscriptions", ApiCreateSubscription(svc))
	r.GET("/subscriptions/user/:userId", ApiGetUserSubscriptions(svc))
	r.GET("/subscriptions/:subscriptionId", ApiGetSubscription(svc))
}
