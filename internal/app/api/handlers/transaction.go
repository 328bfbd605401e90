package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	txsvc "github.com/moonvest/investd/internal/app/service/transaction"
	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/response"
)

type createDepositRequest struct {
	UserID         string  `json:"user_id" binding:"required"`
	UserUsername   string  `json:"user_username"`
	UserFirstName  string  `json:"user_first_name"`
	UserLastName   string  `json:"user_last_name"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	TransactionRef string  `json:"transaction_ref" binding:"required"`
	Network        string  `json:"network" binding:"required"`
	NetworkName    string  `json:"network_name"`
}

// @Summary      Record a self-reported deposit
// @Tags         Transactions
// @Accept       json
// @Produce      json
// @Router       /api/transactions/deposit [post]
func ApiCreateDeposit(svc *txsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createDepositRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.Fail("Invalid request: "+err.Error()))
			return
		}
		d, err := svc.CreateDeposit(c.Request.Context(), &txsvc.DepositRequest{
			UserID:         req.UserID,
			UserUsername:   req.UserUsername,
			UserFirstName:  req.UserFirstName,
			UserLastName:   req.UserLastName,
			Amount:         req.Amount,
			TransactionRef: req.TransactionRef,
			Network:        req.Network,
			NetworkName:    req.NetworkName,
		})
		if err != nil {
			c.JSON(http.StatusOK, response.Fail("Error creating deposit"))
			return
		}
		c.JSON(http.StatusOK, response.OKMsg("Deposit created successfully", gin.H{"transaction_id": d.ID}))
	}
}

type createWithdrawalRequest struct {
	UserID            string  `json:"user_id" binding:"required"`
	UserUsername      string  `json:"user_username"`
	UserFirstName     string  `json:"user_first_name"`
	UserLastName      string  `json:"user_last_name"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	Network           string  `json:"network" binding:"required"`
	NetworkName       string  `json:"network_name"`
	WithdrawalAddress string  `json:"withdrawal_address" binding:"required"`
}

// @Summary      Record a withdrawal request
// @Tags         Transactions
// @Accept       json
// @Produce      json
// @Router       /api/transactions/withdrawal [post]
func ApiCreateWithdrawal(svc *txsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createWithdrawalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.Fail("Invalid request: "+err.Error()))
			return
		}
		w, err := svc.CreateWithdrawal(c.Request.Context(), &txsvc.WithdrawalRequest{
			UserID:            req.UserID,
			UserUsername:      req.UserUsername,
			UserFirstName:     req.UserFirstName,
			UserLastName:      req.UserLastName,
			Amount:            req.Amount,
			Network:           req.Network,
			NetworkName:       req.NetworkName,
			WithdrawalAddress: req.WithdrawalAddress,
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
				c.JSON(http.StatusOK, response.Fail("Error creating withdrawal"))
			}
			return
		}
		c.JSON(http.StatusOK, response.OKMsg("Withdrawal created successfully", gin.H{"transaction_id": w.ID}))
	}
}

func RegisterTransactionRoutes(r gin.IRouter, svc *txsvc.Service) {
	r.POST("/transactions/deposit", ApiCreateDeposit(svc))
	r.POST("/transactions/withdrawal", ApiCreateWithdrawal(svc))
}
