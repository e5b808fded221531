package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"github.com/storemart/validation"
	"github.com/storemart/web/middleware"
	"gorm.io/gorm"
)

type paymentCreateRequest struct {
	OrderNumber string                   `json:"order_number"`
	Gateway     models.PaymentGateway    `json:"gateway"`
	Method      models.PaymentMethodType `json:"method"`

	// Method detail, required fields depend on the method
	UpiID          *string             `json:"upi_id"`
	CardNetwork    *models.CardNetwork `json:"card_network"`
	CardType       *models.CardType    `json:"card_type"`
	CardLast4      *string             `json:"card_last4"`
	BankID         *uint               `json:"bank_id"`
	WalletProvider *string             `json:"wallet_provider"`
}

// PaymentCreate records a pending payment for an order together with its
// method detail row. The method detail requirements mirror the compound
// CHECK constraint, checked here first for a clearer error.
func PaymentCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req paymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	switch req.Method {
	case models.MethodUpi:
		if req.UpiID == nil || *req.UpiID == "" {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "upi payments require upi_id")
		}
	case models.MethodCard:
		if req.CardNetwork == nil || req.CardLast4 == nil || len(*req.CardLast4) != 4 {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "card payments require card_network and card_last4")
		}
	case models.MethodWallet:
		if req.WalletProvider == nil || *req.WalletProvider == "" {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "wallet payments require wallet_provider")
		}
	case models.MethodBank, models.MethodNetBanking, models.MethodCOD:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown payment method "+string(req.Method))
	}

	db := database.GetDB()
	var order models.Order
	if err := db.Where("tenant_id = ? AND order_number = ?", tenant.TenantID, req.OrderNumber).
		First(&order).Error; err != nil {
		return err
	}

	payment := models.Payment{
		TenantID:      tenant.TenantID,
		OrderID:       order.OrderID,
		PaymentNumber: newPaymentNumber(),
		Gateway:       req.Gateway,
		Method:        req.Method,
		Status:        models.PaymentPending,
		Amount:        order.TotalAmount,
		CurrencyCode:  order.CurrencyCode,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := validation.ValidatePaymentTenantConsistency(tx, &payment); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		detail := models.PaymentMethodDetail{
			TenantID:       tenant.TenantID,
			PaymentID:      payment.PaymentID,
			PaymentMethod:  req.Method,
			UpiID:          req.UpiID,
			CardNetwork:    req.CardNetwork,
			CardType:       req.CardType,
			CardLast4:      req.CardLast4,
			BankID:         req.BankID,
			WalletProvider: req.WalletProvider,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}

		history := models.PaymentHistory{
			PaymentID: payment.PaymentID,
			NewStatus: models.PaymentPending,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// PaymentUpdateStatus applies a payment status transition. Completing a
// payment stamps paid_at and a gateway transaction id, and confirms the
// order if it is still pending.
func PaymentUpdateStatus(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req statusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	to := models.PaymentStatus(req.Status)

	db := database.GetDB()
	var payment models.Payment
	if err := db.Where("tenant_id = ? AND payment_number = ?", tenant.TenantID, c.Params("number")).
		First(&payment).Error; err != nil {
		return err
	}

	if err := validation.ValidatePaymentTransition(payment.Status, to); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	from := payment.Status
	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": to}
		if to == models.PaymentCompleted {
			updates["paid_at"] = time.Now()
			if payment.GatewayTransactionID == nil {
				updates["gateway_transaction_id"] = uuid.NewString()
			}
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}

		history := models.PaymentHistory{
			PaymentID: payment.PaymentID,
			OldStatus: &from,
			NewStatus: to,
			ChangedBy: req.ChangedBy,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if to != models.PaymentCompleted {
			return nil
		}

		// Confirm the order on first completed payment
		var order models.Order
		if err := tx.First(&order, payment.OrderID).Error; err != nil {
			return err
		}
		if order.Status != models.OrderPending {
			return nil
		}
		if err := tx.Model(&order).Update("status", models.OrderConfirmed).Error; err != nil {
			return err
		}
		oldStatus := models.OrderPending
		orderHistory := models.OrderHistory{
			OrderID:   order.OrderID,
			OldStatus: &oldStatus,
			NewStatus: models.OrderConfirmed,
			ChangedBy: req.ChangedBy,
		}
		return tx.Create(&orderHistory).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(payment)
}

type refundCreateRequest struct {
	Amount float64 `json:"amount"`
	Reason *string `json:"reason"`
}

// RefundCreate opens a refund against a completed payment. The amount may
// not exceed what the payment still holds after earlier refunds.
func RefundCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req refundCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if req.Amount <= 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "refund amount must be positive")
	}

	db := database.GetDB()
	var payment models.Payment
	if err := db.Where("tenant_id = ? AND payment_number = ?", tenant.TenantID, c.Params("number")).
		First(&payment).Error; err != nil {
		return err
	}
	if payment.Status != models.PaymentCompleted && payment.Status != models.PaymentRefunded {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"cannot refund a payment in status "+string(payment.Status))
	}

	var refund models.Refund
	err := db.Transaction(func(tx *gorm.DB) error {
		var priorRefunded float64
		if err := tx.Model(&models.Refund{}).
			Where("payment_id = ? AND status IN ?", payment.PaymentID,
				[]models.RefundStatus{models.RefundApproved, models.RefundProcessed}).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&priorRefunded).Error; err != nil {
			return err
		}

		refund = models.Refund{
			TenantID:     tenant.TenantID,
			OrderID:      payment.OrderID,
			PaymentID:    payment.PaymentID,
			RefundNumber: newRefundNumber(),
			Amount:       req.Amount,
			Reason:       req.Reason,
			Status:       models.RefundPending,
		}
		if err := validation.ValidateRefundAmount(&payment, priorRefunded, &refund); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		if err := tx.Create(&refund).Error; err != nil {
			return err
		}
		history := models.RefundHistory{
			RefundID:  refund.RefundID,
			NewStatus: models.RefundPending,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(refund)
}

// RefundUpdateStatus moves a refund through its approval lifecycle.
// Processing a refund stamps processed_at and, when the full payment amount
// is now refunded, flips the payment to refunded.
func RefundUpdateStatus(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req statusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	to := models.RefundStatus(req.Status)

	db := database.GetDB()
	var refund models.Refund
	if err := db.Where("tenant_id = ? AND refund_number = ?", tenant.TenantID, c.Params("number")).
		First(&refund).Error; err != nil {
		return err
	}

	if err := validation.ValidateRefundTransition(refund.Status, to); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	from := refund.Status
	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": to}
		if to == models.RefundProcessed {
			updates["processed_at"] = time.Now()
		}
		if err := tx.Model(&refund).Updates(updates).Error; err != nil {
			return err
		}

		history := models.RefundHistory{
			RefundID:  refund.RefundID,
			OldStatus: &from,
			NewStatus: to,
			ChangedBy: req.ChangedBy,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if to != models.RefundProcessed {
			return nil
		}

		var payment models.Payment
		if err := tx.First(&payment, refund.PaymentID).Error; err != nil {
			return err
		}

		var totalRefunded float64
		if err := tx.Model(&models.Refund{}).
			Where("payment_id = ? AND status = ?", payment.PaymentID, models.RefundProcessed).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalRefunded).Error; err != nil {
			return err
		}
		if totalRefunded < payment.Amount || payment.Status != models.PaymentCompleted {
			return nil
		}

		if err := tx.Model(&payment).Update("status", models.PaymentRefunded).Error; err != nil {
			return err
		}
		oldStatus := models.PaymentCompleted
		paymentHistory := models.PaymentHistory{
			PaymentID: payment.PaymentID,
			OldStatus: &oldStatus,
			NewStatus: models.PaymentRefunded,
			ChangedBy: req.ChangedBy,
		}
		return tx.Create(&paymentHistory).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(refund)
}

func newPaymentNumber() string {
	return "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func newRefundNumber() string {
	return "REF-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
