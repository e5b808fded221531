package database

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/storemart/models"
	"github.com/storemart/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SimulationConfig holds simulation parameters
type SimulationConfig struct {
	StartDate         time.Time
	EndDate           time.Time
	DB                *gorm.DB
	TenantSlug        string
	NumCustomers      int     // Customers created before the run if missing
	AverageDailyCarts int     // Average carts opened per day
	ConversionRate    float64 // Fraction of carts that become orders
	RefundRate        float64 // Fraction of delivered orders that get refunded
}

// StoreSimulation drives a shopping simulation for one tenant: carts are
// opened and either abandoned or converted into orders, payments are taken,
// orders progress through their lifecycle and a few delivered orders are
// refunded. Every write goes through the validation package, so a run is also
// an end-to-end exercise of the invariants the schema cannot enforce.
type StoreSimulation struct {
	config        SimulationConfig
	tenant        models.Tenant
	customers     []models.User
	products      []models.Product
	coupons       []models.Coupon
	currentDate   time.Time
	orderCounter  int
	payCounter    int
	refundCounter int
}

// NewStoreSimulation creates a simulation instance bound to one tenant
func NewStoreSimulation(config SimulationConfig) (*StoreSimulation, error) {
	sim := &StoreSimulation{
		config:      config,
		currentDate: config.StartDate,
	}

	if err := sim.loadExistingData(); err != nil {
		return nil, fmt.Errorf("failed to load existing data: %w", err)
	}

	if err := sim.initializeCounters(); err != nil {
		return nil, fmt.Errorf("failed to initialize counters: %w", err)
	}

	return sim, nil
}

// loadExistingData loads the tenant, its catalog and its customers
func (s *StoreSimulation) loadExistingData() error {
	if err := s.config.DB.Where("slug = ?", s.config.TenantSlug).First(&s.tenant).Error; err != nil {
		return fmt.Errorf("tenant %q not found: %w", s.config.TenantSlug, err)
	}

	if err := s.config.DB.
		Where("tenant_id = ? AND is_active = ? AND total_stock_available > 0", s.tenant.TenantID, true).
		Find(&s.products).Error; err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	if len(s.products) == 0 {
		return fmt.Errorf("tenant %q has no sellable products, run the seed first", s.config.TenantSlug)
	}

	if err := s.config.DB.
		Where("tenant_id = ? AND is_active = ?", s.tenant.TenantID, true).
		Find(&s.coupons).Error; err != nil {
		return fmt.Errorf("failed to load coupons: %w", err)
	}

	if err := s.ensureCustomers(); err != nil {
		return fmt.Errorf("failed to ensure customers: %w", err)
	}

	log.Printf("Loaded tenant %q: %d products, %d coupons, %d customers",
		s.tenant.Slug, len(s.products), len(s.coupons), len(s.customers))
	return nil
}

// ensureCustomers creates simulated customer accounts if the tenant has fewer
// than configured
func (s *StoreSimulation) ensureCustomers() error {
	customerRole := getRoleID(s.config.DB, "customer")

	if err := s.config.DB.
		Joins("JOIN user_role_assignments ura ON ura.user_id = users.user_id").
		Where("users.tenant_id = ? AND ura.role_id = ?", s.tenant.TenantID, customerRole).
		Find(&s.customers).Error; err != nil {
		return err
	}

	if len(s.customers) >= s.config.NumCustomers {
		return nil
	}

	// One bcrypt hash shared by all simulated accounts, hashing per user is
	// needlessly slow for generated data
	hash, err := bcrypt.GenerateFromPassword([]byte("Sim-"+uuid.NewString()[:8]), bcrypt.MinCost)
	if err != nil {
		return err
	}

	firstNames := []string{"Aarav", "Diya", "Ishaan", "Meera", "Rohan", "Sana", "Vikram", "Anaya", "Kabir", "Priya"}
	lastNames := []string{"Sharma", "Patel", "Iyer", "Khan", "Reddy", "Das", "Mehta", "Nair", "Bose", "Gupta"}

	for i := len(s.customers); i < s.config.NumCustomers; i++ {
		user := models.User{
			TenantID:      uintPtr(s.tenant.TenantID),
			Email:         fmt.Sprintf("customer%03d@sim.%s.local", i+1, s.tenant.Slug),
			PasswordHash:  string(hash),
			FirstName:     firstNames[rand.Intn(len(firstNames))],
			LastName:      lastNames[rand.Intn(len(lastNames))],
			Status:        models.UserActive,
			EmailVerified: true,
		}

		if err := s.config.DB.
			Where("tenant_id = ? AND email = ?", s.tenant.TenantID, user.Email).
			FirstOrCreate(&user).Error; err != nil {
			return err
		}

		assignment := models.UserRoleAssignment{UserID: user.UserID, RoleID: customerRole}
		if err := s.config.DB.
			Where(models.UserRoleAssignment{UserID: user.UserID, RoleID: customerRole}).
			FirstOrCreate(&assignment).Error; err != nil {
			return err
		}

		s.customers = append(s.customers, user)
	}

	log.Printf("  ✓ Created customers up to %d", len(s.customers))
	return nil
}

// initializeCounters resumes document numbering from the last generated row
func (s *StoreSimulation) initializeCounters() error {
	var lastOrder models.Order
	err := s.config.DB.Where("tenant_id = ?", s.tenant.TenantID).
		Order("order_id desc").First(&lastOrder).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		fmt.Sscanf(lastOrder.OrderNumber, "ORD-%*d-%d", &s.orderCounter)
	}

	var lastPayment models.Payment
	err = s.config.DB.Where("tenant_id = ?", s.tenant.TenantID).
		Order("payment_id desc").First(&lastPayment).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		fmt.Sscanf(lastPayment.PaymentNumber, "PAY-%*d-%d", &s.payCounter)
	}

	var lastRefund models.Refund
	err = s.config.DB.Where("tenant_id = ?", s.tenant.TenantID).
		Order("refund_id desc").First(&lastRefund).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		fmt.Sscanf(lastRefund.RefundNumber, "REF-%*d-%d", &s.refundCounter)
	}

	return nil
}

// Run executes the simulation day by day
func (s *StoreSimulation) Run() error {
	log.Printf("Starting simulation for tenant %q from %s to %s",
		s.tenant.Slug,
		s.config.StartDate.Format("2006-01-02"),
		s.config.EndDate.Format("2006-01-02"))

	for s.currentDate = s.config.StartDate; !s.currentDate.After(s.config.EndDate); s.currentDate = s.currentDate.AddDate(0, 0, 1) {
		log.Printf("=== Processing Date: %s ===", s.currentDate.Format("2006-01-02"))

		numCarts := s.calculateDailyCartCount()
		orders := 0
		for i := 0; i < numCarts; i++ {
			converted, err := s.processShoppingSession()
			if err != nil {
				log.Printf("  ⚠ Session %d failed: %v", i+1, err)
				continue
			}
			if converted {
				orders++
			}
		}
		log.Printf("  ✓ %d carts opened, %d converted to orders", numCarts, orders)

		if err := s.progressOpenOrders(); err != nil {
			return fmt.Errorf("failed to progress orders: %w", err)
		}

		if err := s.processRefunds(); err != nil {
			return fmt.Errorf("failed to process refunds: %w", err)
		}
	}

	log.Println("Simulation completed successfully")
	s.printSimulationSummary()
	return nil
}

// calculateDailyCartCount varies traffic by day of week
func (s *StoreSimulation) calculateDailyCartCount() int {
	base := s.config.AverageDailyCarts
	if base == 0 {
		base = 10
	}

	switch s.currentDate.Weekday() {
	case time.Saturday, time.Sunday:
		return base + rand.Intn(base/2+1)
	case time.Monday:
		return base - rand.Intn(base/3+1)
	default:
		return base - base/5 + rand.Intn(2*base/5+1)
	}
}

// processShoppingSession opens a cart for a random customer, fills it and
// either converts it into an order or abandons it. Returns whether the cart
// converted.
func (s *StoreSimulation) processShoppingSession() (bool, error) {
	customer := &s.customers[rand.Intn(len(s.customers))]

	convert := rand.Float64() < s.config.ConversionRate

	err := s.config.DB.Transaction(func(tx *gorm.DB) error {
		cart := models.Cart{
			TenantID: s.tenant.TenantID,
			UserID:   customer.UserID,
			Status:   models.CartOpen,
		}

		// The partial unique index allows one open cart per user; reuse a
		// leftover open cart instead of violating it
		if err := tx.Where("tenant_id = ? AND user_id = ? AND status = ?",
			s.tenant.TenantID, customer.UserID, models.CartOpen).
			FirstOrCreate(&cart).Error; err != nil {
			return fmt.Errorf("failed to open cart: %w", err)
		}

		numItems := 1 + rand.Intn(4)
		items := make([]models.CartItem, 0, numItems)
		picked := map[uint]bool{}
		for i := 0; i < numItems; i++ {
			product := &s.products[rand.Intn(len(s.products))]
			if picked[product.ProductID] {
				continue
			}
			picked[product.ProductID] = true

			item := models.CartItem{
				CartID:    cart.CartID,
				ProductID: product.ProductID,
				Quantity:  1 + rand.Intn(3),
				UnitPrice: product.Price,
			}
			if err := tx.Where(models.CartItem{CartID: cart.CartID, ProductID: product.ProductID}).
				FirstOrCreate(&item).Error; err != nil {
				return fmt.Errorf("failed to add cart item: %w", err)
			}
			items = append(items, item)
		}

		if err := validation.ValidateCartTenantConsistency(tx, &cart, items); err != nil {
			return err
		}

		if !convert {
			return tx.Model(&cart).Update("status", models.CartAbandoned).Error
		}

		order, err := s.convertCart(tx, &cart, customer, items)
		if err != nil {
			return err
		}

		return s.takePayment(tx, order)
	})

	return convert && err == nil, err
}

// convertCart turns an open cart into a pending order with snapshot items,
// validated totals and an initial history row
func (s *StoreSimulation) convertCart(tx *gorm.DB, cart *models.Cart, customer *models.User, cartItems []models.CartItem) (*models.Order, error) {
	s.orderCounter++
	orderNumber := fmt.Sprintf("ORD-%s-%05d", s.currentDate.Format("200601"), s.orderCounter)

	var subtotal, taxTotal float64
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for i := range cartItems {
		ci := &cartItems[i]

		var product models.Product
		if err := tx.First(&product, ci.ProductID).Error; err != nil {
			return nil, fmt.Errorf("failed to load product %d: %w", ci.ProductID, err)
		}

		lineSubtotal := round2(ci.UnitPrice * float64(ci.Quantity))
		lineTax := round2(lineSubtotal * gstRate(product.GstSlab))

		orderItems = append(orderItems, models.OrderItem{
			TenantID:    s.tenant.TenantID,
			ProductID:   product.ProductID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    ci.Quantity,
			UnitPrice:   ci.UnitPrice,
			TaxAmount:   lineTax,
			LineTotal:   round2(lineSubtotal + lineTax),
		})

		subtotal = round2(subtotal + lineSubtotal)
		taxTotal = round2(taxTotal + lineTax)
	}

	shipping := 49.00
	if subtotal >= 999.00 {
		shipping = 0
	}

	var couponID *uint
	var discount float64
	if len(s.coupons) > 0 && rand.Float64() < 0.2 {
		coupon := s.pickCoupon(subtotal)
		if coupon != nil {
			couponID = &coupon.CouponID
			discount = couponDiscount(coupon, subtotal)
		}
	}

	address, _ := json.Marshal(map[string]string{
		"line1": fmt.Sprintf("%d MG Road", 1+rand.Intn(200)),
		"city":  "Bengaluru",
		"state": "KA",
		"pin":   "560001",
	})

	order := models.Order{
		TenantID:        s.tenant.TenantID,
		UserID:          customer.UserID,
		OrderNumber:     orderNumber,
		Status:          models.OrderPending,
		Subtotal:        subtotal,
		TaxAmount:       taxTotal,
		ShippingAmount:  shipping,
		DiscountAmount:  discount,
		TotalAmount:     round2(subtotal + taxTotal + shipping - discount),
		CurrencyCode:    s.tenant.DefaultCurrency,
		CouponID:        couponID,
		ShippingAddress: datatypes.JSON(address),
		BillingAddress:  datatypes.JSON(address),
	}

	if err := validation.ValidateOrderTotals(&order, orderItems); err != nil {
		return nil, err
	}
	if err := validation.ValidateOrderTenantConsistency(tx, &order, orderItems); err != nil {
		return nil, err
	}

	if err := tx.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.OrderID
		if err := tx.Create(&orderItems[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}

		// Maintain the denormalized stock counters
		if err := tx.Model(&models.Product{}).
			Where("product_id = ?", orderItems[i].ProductID).
			Updates(map[string]interface{}{
				"total_stock_sold":      gorm.Expr("total_stock_sold + ?", orderItems[i].Quantity),
				"total_stock_available": gorm.Expr("total_stock_available - ?", orderItems[i].Quantity),
			}).Error; err != nil {
			return nil, fmt.Errorf("failed to update stock counters: %w", err)
		}
	}

	if couponID != nil {
		if err := tx.Model(&models.Coupon{}).
			Where("coupon_id = ?", *couponID).
			Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
			return nil, fmt.Errorf("failed to bump coupon usage: %w", err)
		}
	}

	history := models.OrderHistory{
		OrderID:   order.OrderID,
		NewStatus: models.OrderPending,
		ChangedAt: s.currentDate,
	}
	if err := tx.Create(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to write order history: %w", err)
	}

	if err := tx.Model(cart).Update("status", models.CartConverted).Error; err != nil {
		return nil, fmt.Errorf("failed to close cart: %w", err)
	}

	return &order, nil
}

// takePayment records a payment for a new order. Most payments complete,
// some fail and retry, a few orders stay unpaid.
func (s *StoreSimulation) takePayment(tx *gorm.DB, order *models.Order) error {
	s.payCounter++
	payment := models.Payment{
		TenantID:      s.tenant.TenantID,
		OrderID:       order.OrderID,
		PaymentNumber: fmt.Sprintf("PAY-%s-%05d", s.currentDate.Format("200601"), s.payCounter),
		Gateway:       randomGateway(),
		Method:        randomMethod(),
		Status:        models.PaymentPending,
		Amount:        order.TotalAmount,
		CurrencyCode:  order.CurrencyCode,
	}

	if err := validation.ValidatePaymentTenantConsistency(tx, &payment); err != nil {
		return err
	}
	if err := tx.Create(&payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	if err := s.recordPaymentChange(tx, &payment, nil, models.PaymentPending); err != nil {
		return err
	}

	if err := s.createMethodDetail(tx, &payment); err != nil {
		return err
	}

	// 8% of payments fail outright
	if rand.Float64() < 0.08 {
		return s.movePayment(tx, &payment, models.PaymentFailed)
	}

	if err := s.movePayment(tx, &payment, models.PaymentProcessing); err != nil {
		return err
	}
	if err := s.movePayment(tx, &payment, models.PaymentCompleted); err != nil {
		return err
	}

	txnID := uuid.NewString()
	paidAt := s.currentDate.Add(time.Duration(8+rand.Intn(12)) * time.Hour)
	if err := tx.Model(&payment).Updates(map[string]interface{}{
		"gateway_transaction_id": txnID,
		"paid_at":                paidAt,
	}).Error; err != nil {
		return fmt.Errorf("failed to record gateway transaction: %w", err)
	}

	// Paid orders confirm immediately
	return s.moveOrder(tx, order, models.OrderConfirmed)
}

// createMethodDetail writes the method-specific detail row satisfying the
// compound CHECK constraint
func (s *StoreSimulation) createMethodDetail(tx *gorm.DB, payment *models.Payment) error {
	detail := models.PaymentMethodDetail{
		TenantID:      s.tenant.TenantID,
		PaymentID:     payment.PaymentID,
		PaymentMethod: payment.Method,
	}

	switch payment.Method {
	case models.MethodUpi:
		var bank models.Bank
		if err := tx.Where("upi_handle IS NOT NULL").Order("bank_id").First(&bank).Error; err == nil {
			detail.UpiID = strPtr(fmt.Sprintf("sim%d%s", rand.Intn(10000), *bank.UpiHandle))
			detail.BankID = uintPtr(bank.BankID)
		} else {
			detail.UpiID = strPtr(fmt.Sprintf("sim%d@upi", rand.Intn(10000)))
		}
	case models.MethodCard:
		networks := []models.CardNetwork{models.NetworkVisa, models.NetworkMastercard, models.NetworkRupay}
		network := networks[rand.Intn(len(networks))]
		cardType := models.CardDebit
		if rand.Float64() < 0.4 {
			cardType = models.CardCredit
		}
		detail.CardNetwork = &network
		detail.CardType = &cardType
		detail.CardLast4 = strPtr(fmt.Sprintf("%04d", rand.Intn(10000)))
	case models.MethodWallet:
		providers := []string{"paytm", "phonepe", "amazonpay"}
		detail.WalletProvider = strPtr(providers[rand.Intn(len(providers))])
	case models.MethodNetBanking:
		var bank models.Bank
		if err := tx.Order("bank_id").First(&bank).Error; err == nil {
			detail.BankID = uintPtr(bank.BankID)
		}
	}

	if err := tx.Create(&detail).Error; err != nil {
		return fmt.Errorf("failed to create payment method detail: %w", err)
	}
	return nil
}

// progressOpenOrders advances confirmed orders one step along their lifecycle
// each day
func (s *StoreSimulation) progressOpenOrders() error {
	var open []models.Order
	if err := s.config.DB.
		Where("tenant_id = ? AND status IN ?", s.tenant.TenantID,
			[]models.OrderStatus{models.OrderConfirmed, models.OrderProcessing, models.OrderShipped}).
		Find(&open).Error; err != nil {
		return err
	}

	next := map[models.OrderStatus]models.OrderStatus{
		models.OrderConfirmed:  models.OrderProcessing,
		models.OrderProcessing: models.OrderShipped,
		models.OrderShipped:    models.OrderDelivered,
	}

	for i := range open {
		order := &open[i]

		// 3% of in-flight orders get cancelled
		target := next[order.Status]
		if rand.Float64() < 0.03 {
			target = models.OrderCancelled
		}

		err := s.config.DB.Transaction(func(tx *gorm.DB) error {
			return s.moveOrder(tx, order, target)
		})
		if err != nil {
			log.Printf("  ⚠ Order %s: %v", order.OrderNumber, err)
		}
	}

	if len(open) > 0 {
		log.Printf("  ✓ Progressed %d in-flight orders", len(open))
	}
	return nil
}

// processRefunds opens refunds against a fraction of freshly delivered orders
// and walks them through approval
func (s *StoreSimulation) processRefunds() error {
	var delivered []models.Order
	if err := s.config.DB.
		Where("tenant_id = ? AND status = ?", s.tenant.TenantID, models.OrderDelivered).
		Find(&delivered).Error; err != nil {
		return err
	}

	refunded := 0
	for i := range delivered {
		if rand.Float64() >= s.config.RefundRate {
			continue
		}
		order := &delivered[i]

		err := s.config.DB.Transaction(func(tx *gorm.DB) error {
			var payment models.Payment
			if err := tx.Where("order_id = ? AND status = ?", order.OrderID, models.PaymentCompleted).
				First(&payment).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return nil // unpaid order, nothing to refund
				}
				return err
			}

			var priorRefunded float64
			row := tx.Model(&models.Refund{}).
				Where("payment_id = ? AND status IN ?", payment.PaymentID,
					[]models.RefundStatus{models.RefundApproved, models.RefundProcessed}).
				Select("COALESCE(SUM(amount), 0)")
			if err := row.Scan(&priorRefunded).Error; err != nil {
				return err
			}

			s.refundCounter++
			refund := models.Refund{
				TenantID:     s.tenant.TenantID,
				OrderID:      order.OrderID,
				PaymentID:    payment.PaymentID,
				RefundNumber: fmt.Sprintf("REF-%s-%04d", s.currentDate.Format("200601"), s.refundCounter),
				Amount:       payment.Amount,
				Reason:       strPtr("Customer return"),
				Status:       models.RefundPending,
			}

			if err := validation.ValidateRefundAmount(&payment, priorRefunded, &refund); err != nil {
				return err
			}
			if err := tx.Create(&refund).Error; err != nil {
				return fmt.Errorf("failed to create refund: %w", err)
			}
			if err := s.recordRefundChange(tx, &refund, nil, models.RefundPending); err != nil {
				return err
			}

			// 10% of refund requests are rejected
			if rand.Float64() < 0.1 {
				return s.moveRefund(tx, &refund, models.RefundRejected)
			}

			if err := s.moveRefund(tx, &refund, models.RefundApproved); err != nil {
				return err
			}
			if err := s.moveRefund(tx, &refund, models.RefundProcessed); err != nil {
				return err
			}
			if err := tx.Model(&refund).Update("processed_at", s.currentDate).Error; err != nil {
				return err
			}

			if err := s.movePayment(tx, &payment, models.PaymentRefunded); err != nil {
				return err
			}
			return s.moveOrder(tx, order, models.OrderRefunded)
		})
		if err != nil {
			log.Printf("  ⚠ Refund for %s: %v", order.OrderNumber, err)
			continue
		}
		refunded++
	}

	if refunded > 0 {
		log.Printf("  ✓ Processed %d refunds", refunded)
	}
	return nil
}

// moveOrder applies a validated status transition and writes the history row
func (s *StoreSimulation) moveOrder(tx *gorm.DB, order *models.Order, to models.OrderStatus) error {
	from := order.Status
	if err := validation.ValidateOrderTransition(from, to); err != nil {
		return err
	}
	if err := tx.Model(order).Update("status", to).Error; err != nil {
		return err
	}
	order.Status = to

	history := models.OrderHistory{
		OrderID:   order.OrderID,
		OldStatus: &from,
		NewStatus: to,
		ChangedAt: s.currentDate,
	}
	return tx.Create(&history).Error
}

// movePayment applies a validated status transition and writes the history row
func (s *StoreSimulation) movePayment(tx *gorm.DB, payment *models.Payment, to models.PaymentStatus) error {
	from := payment.Status
	if err := validation.ValidatePaymentTransition(from, to); err != nil {
		return err
	}
	if err := tx.Model(payment).Update("status", to).Error; err != nil {
		return err
	}
	payment.Status = to
	return s.recordPaymentChange(tx, payment, &from, to)
}

func (s *StoreSimulation) recordPaymentChange(tx *gorm.DB, payment *models.Payment, from *models.PaymentStatus, to models.PaymentStatus) error {
	history := models.PaymentHistory{
		PaymentID: payment.PaymentID,
		OldStatus: from,
		NewStatus: to,
		ChangedAt: s.currentDate,
	}
	return tx.Create(&history).Error
}

// moveRefund applies a validated status transition and writes the history row
func (s *StoreSimulation) moveRefund(tx *gorm.DB, refund *models.Refund, to models.RefundStatus) error {
	from := refund.Status
	if err := validation.ValidateRefundTransition(from, to); err != nil {
		return err
	}
	if err := tx.Model(refund).Update("status", to).Error; err != nil {
		return err
	}
	refund.Status = to
	return s.recordRefundChange(tx, refund, &from, to)
}

func (s *StoreSimulation) recordRefundChange(tx *gorm.DB, refund *models.Refund, from *models.RefundStatus, to models.RefundStatus) error {
	history := models.RefundHistory{
		RefundID:  refund.RefundID,
		OldStatus: from,
		NewStatus: to,
		ChangedAt: s.currentDate,
	}
	return tx.Create(&history).Error
}

// pickCoupon returns a coupon currently valid for the given subtotal, or nil
func (s *StoreSimulation) pickCoupon(subtotal float64) *models.Coupon {
	for i := range s.coupons {
		c := &s.coupons[i]
		if c.MinOrderAmount > subtotal {
			continue
		}
		if c.ValidFrom != nil && s.currentDate.Before(*c.ValidFrom) {
			continue
		}
		if c.ValidUntil != nil && s.currentDate.After(*c.ValidUntil) {
			continue
		}
		if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
			continue
		}
		return c
	}
	return nil
}

// printSimulationSummary prints totals for the simulated period
func (s *StoreSimulation) printSimulationSummary() {
	log.Println("=== Simulation Summary ===")

	var orderCount, paymentCount, refundCount int64
	s.config.DB.Model(&models.Order{}).Where("tenant_id = ?", s.tenant.TenantID).Count(&orderCount)
	s.config.DB.Model(&models.Payment{}).Where("tenant_id = ?", s.tenant.TenantID).Count(&paymentCount)
	s.config.DB.Model(&models.Refund{}).Where("tenant_id = ?", s.tenant.TenantID).Count(&refundCount)

	var revenue struct {
		Total float64
	}
	s.config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("tenant_id = ? AND status IN ?", s.tenant.TenantID,
			[]models.PaymentStatus{models.PaymentCompleted, models.PaymentRefunded}).
		Scan(&revenue)

	log.Printf("Orders: %d", orderCount)
	log.Printf("Payments: %d", paymentCount)
	log.Printf("Refunds: %d", refundCount)
	log.Printf("Collected: %.2f %s", revenue.Total, s.tenant.DefaultCurrency)
}

// Helper functions

func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

// gstRate maps a GST slab to its fractional rate
func gstRate(slab *models.GstSlab) float64 {
	if slab == nil {
		return 0
	}
	switch *slab {
	case models.GstSlabFive:
		return 0.05
	case models.GstSlabTwelve:
		return 0.12
	case models.GstSlabEighteen:
		return 0.18
	case models.GstSlabTwentyEight:
		return 0.28
	default:
		return 0
	}
}

// couponDiscount computes the discount a coupon grants on a subtotal
func couponDiscount(c *models.Coupon, subtotal float64) float64 {
	var discount float64
	switch c.DiscountType {
	case models.DiscountPercentage:
		discount = round2(subtotal * c.DiscountValue / 100)
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			discount = *c.MaxDiscountAmount
		}
	case models.DiscountFixedAmount:
		discount = c.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

func randomGateway() models.PaymentGateway {
	gateways := []models.PaymentGateway{
		models.GatewayRazorpay, models.GatewayRazorpay, models.GatewayRazorpay,
		models.GatewayStripe, models.GatewayPhonepe, models.GatewayPaytm,
	}
	return gateways[rand.Intn(len(gateways))]
}

func randomMethod() models.PaymentMethodType {
	methods := []models.PaymentMethodType{
		models.MethodUpi, models.MethodUpi, models.MethodUpi,
		models.MethodCard, models.MethodCard,
		models.MethodWallet, models.MethodNetBanking, models.MethodCOD,
	}
	return methods[rand.Intn(len(methods))]
}

// RunSimulation is the main entry point for the simulation
func RunSimulation(db *gorm.DB, tenantSlug string, startDate, endDate time.Time) error {
	config := SimulationConfig{
		StartDate:         startDate,
		EndDate:           endDate,
		DB:                db,
		TenantSlug:        tenantSlug,
		NumCustomers:      25,
		AverageDailyCarts: 12,
		ConversionRate:    0.6,
		RefundRate:        0.05,
	}

	sim, err := NewStoreSimulation(config)
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	return sim.Run()
}
