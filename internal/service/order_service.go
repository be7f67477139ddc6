package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowkart/internal/model"
	"glowkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	coupons     CouponService
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
	coupons CouponService,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		coupons:     coupons,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// newOrderNumber generates a human-readable order reference like
// GK-20260901-3FA9C2.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("GK-%s-%s", now.Format("20060102"), suffix)
}

func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "Order request is required")
	}

	if len(req.Items) == 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Order must contain at least one item")
	}

	for i, item := range req.Items {
		if item.ProductID == uuid.Nil {
			return model.NewDomainErrorf(model.ErrCodeValidation, "Item %d: product ID is required", i)
		}
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

// PlaceOrder creates a new order, validating stock and applying any coupon.
// Totals are computed from catalogue prices, never from the request.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	byID := make(map[uuid.UUID]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var (
		subtotal     float64
		shippingCost float64
		stockErrors  []string
		freeShipping = true
	)

	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive {
			return nil, model.ErrProductNotFound
		}

		if product.Stock < item.Quantity {
			stockErrors = append(stockErrors, fmt.Sprintf("%s: requested %d, only %d available",
				product.Name, item.Quantity, product.Stock))
			continue
		}

		subtotal += product.Price * float64(item.Quantity)
		if !product.FreeShipping {
			freeShipping = false
			if product.ShippingPrice > shippingCost {
				shippingCost = product.ShippingPrice
			}
		}
	}

	if len(stockErrors) > 0 {
		s.logger.Warn().Strs("stock_errors", stockErrors).Msg("order rejected for insufficient stock")
		return nil, &model.DomainError{
			Code:    model.ErrCodeInsufficientStock,
			Message: "Insufficient stock",
			Details: stockErrors,
		}
	}

	if freeShipping {
		shippingCost = 0
	}

	var discount float64
	var couponCode *string
	if req.CouponCode != nil && *req.CouponCode != "" {
		code := NormalizeCode(*req.CouponCode)
		discount, err = s.coupons.Apply(ctx, code, subtotal)
		if err != nil {
			s.logger.Warn().Str("coupon_code", code).Err(err).Msg("coupon rejected")
			return nil, err
		}
		couponCode = &code
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		OrderNumber:   newOrderNumber(now),
		UserID:        userID,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
		Subtotal:      subtotal,
		Discount:      discount,
		ShippingCost:  shippingCost,
		Total:         subtotal - discount + shippingCost,
		CouponCode:    couponCode,
		ShippingAddr:  req.ShippingAddr,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		product := byID[item.ProductID]
		items[i] = model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			CameraModel: item.CameraModel,
			LensModel:   item.LensModel,
			FlashModel:  item.FlashModel,
		}
	}

	if err = s.orderRepo.CreateItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	// Decrement stock inside the same transaction. The repository guard
	// re-checks availability, so a concurrent order cannot oversell.
	for _, item := range req.Items {
		var ok bool
		ok, err = s.productRepo.DecrementStock(ctx, tx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
		if !ok {
			err = &model.DomainError{
				Code:    model.ErrCodeInsufficientStock,
				Message: "Insufficient stock",
				Details: []string{byID[item.ProductID].Name},
			}
			return nil, err
		}
	}

	if couponCode != nil {
		var ok bool
		ok, err = s.couponRepo.Redeem(ctx, tx, *couponCode)
		if err != nil {
			return nil, fmt.Errorf("failed to redeem coupon: %w", err)
		}
		if !ok {
			err = model.ErrCouponExhausted
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.Items = items

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(items)).
		Float64("total", order.Total).
		Msg("order placed")

	return order, nil
}

// GetByID retrieves an order visible to the given user. Admin callers pass
// uuid.Nil to skip the ownership check.
func (s *orderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil || (userID != uuid.Nil && order.UserID != userID) {
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// ListByUser retrieves a user's orders, optionally filtered by status.
func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]model.Order, error) {
	if status != "" && !model.ValidOrderStatus(status) {
		return nil, model.NewDomainErrorf(model.ErrCodeValidation, "Unknown order status: %s", status)
	}
	limit, offset = clampPagination(limit, offset)

	orders, err := s.orderRepo.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list user orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// ListAll retrieves all orders (admin).
func (s *orderService) ListAll(ctx context.Context, status string, limit, offset int) ([]model.Order, error) {
	if status != "" && !model.ValidOrderStatus(status) {
		return nil, model.NewDomainErrorf(model.ErrCodeValidation, "Unknown order status: %s", status)
	}
	limit, offset = clampPagination(limit, offset)

	orders, err := s.orderRepo.ListAll(ctx, status, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// StatusCounts counts a user's orders per status. Every known status appears
// in the result, zero or not.
func (s *orderService) StatusCounts(ctx context.Context, userID uuid.UUID) (*model.StatusCounts, error) {
	counts, err := s.orderRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	result := &model.StatusCounts{ByStatus: make(map[string]int, len(model.OrderStatuses))}
	for _, status := range model.OrderStatuses {
		result.ByStatus[status] = counts[status]
		result.Total += counts[status]
	}

	return result, nil
}

// displaySteps are the five fulfilment stages shown on the tracking page.
// Cancelled is deliberately not a step; it is rendered as a separate branch.
var displaySteps = []struct {
	status string
	label  string
}{
	{model.StatusPending, "Order Placed"},
	{model.StatusConfirmed, "Confirmed"},
	{model.StatusProcessing, "Processing"},
	{model.StatusShipped, "Shipped"},
	{model.StatusDelivered, "Delivered"},
}

// statusRank maps each order status to its position in the fulfilment flow.
// The switch is exhaustive over every status the backend can store so no
// status silently drops out of the tracking display.
func statusRank(status string) (int, bool) {
	switch status {
	case model.StatusPending:
		return 0, false
	case model.StatusConfirmed:
		return 1, false
	case model.StatusProcessing:
		return 2, false
	case model.StatusShipped:
		return 3, false
	case model.StatusDelivered:
		return 4, false
	case model.StatusCancelled:
		return -1, true
	default:
		// Unreachable for persisted orders; treat like a fresh order.
		return 0, false
	}
}

// Timeline builds the five-step display timeline for an order status.
func Timeline(status string) ([]model.TimelineStep, bool) {
	rank, cancelled := statusRank(status)

	steps := make([]model.TimelineStep, len(displaySteps))
	for i, step := range displaySteps {
		state := model.StepPending
		if !cancelled {
			switch {
			case i < rank || (i == rank && status == model.StatusDelivered):
				state = model.StepDone
			case i == rank:
				state = model.StepCurrent
			}
		}
		steps[i] = model.TimelineStep{
			Status: step.status,
			Label:  step.label,
			State:  state,
		}
	}

	return steps, cancelled
}

// Track resolves an order number into the order plus its display timeline.
func (s *orderService) Track(ctx context.Context, orderNumber string) (*model.TrackResponse, error) {
	order, err := s.orderRepo.GetByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	timeline, cancelled := Timeline(order.Status)

	return &model.TrackResponse{
		Order:     order,
		Timeline:  timeline,
		Cancelled: cancelled,
	}, nil
}

// cancellable reports whether an order in the given status may still be cancelled.
func cancellable(status string) bool {
	switch status {
	case model.StatusPending, model.StatusConfirmed, model.StatusProcessing:
		return true
	default:
		// shipped, delivered and cancelled orders stay as they are
		return false
	}
}

// Cancel cancels an order and restocks its items.
func (s *orderService) Cancel(ctx context.Context, userID, orderID uuid.UUID, reason string) (*model.Order, error) {
	order, err := s.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !cancellable(order.Status) {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("status", order.Status).
			Msg("cancellation rejected")
		return nil, model.NewDomainErrorf(model.ErrCodeOrderNotCancellable,
			"Orders in status %q cannot be cancelled", order.Status)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var cancelled bool
	if cancelled, err = s.orderRepo.Cancel(ctx, tx, orderID, strings.TrimSpace(reason)); err != nil {
		return nil, err
	}
	if !cancelled {
		// The status moved between the read above and the guarded UPDATE:
		// a concurrent cancel or shipment won. Skip the restock.
		err = model.NewDomainError(model.ErrCodeOrderNotCancellable,
			"Order can no longer be cancelled")
		return nil, err
	}

	for _, item := range order.Items {
		if err = s.productRepo.RestoreStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to commit cancellation")
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	order.Status = model.StatusCancelled
	order.CancelReason = strings.TrimSpace(reason)

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("order_number", order.OrderNumber).
		Msg("order cancelled")

	return order, nil
}

// validTransition reports whether an order may move from one status to another.
// Fulfilment is strictly forward; cancellation follows the same rules as
// customer cancellation.
func validTransition(from, to string) bool {
	if to == model.StatusCancelled {
		return cancellable(from)
	}

	fromRank, fromCancelled := statusRank(from)
	toRank, toCancelled := statusRank(to)
	if fromCancelled || toCancelled {
		return false
	}

	return toRank == fromRank+1
}

// UpdateStatus advances an order along the fulfilment flow (admin).
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.StatusUpdateRequest) (*model.Order, error) {
	if !model.ValidOrderStatus(req.Status) {
		return nil, model.NewDomainErrorf(model.ErrCodeValidation, "Unknown order status: %s", req.Status)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !validTransition(order.Status, req.Status) {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("from", order.Status).
			Str("to", req.Status).
			Msg("status transition rejected")
		return nil, model.NewDomainErrorf(model.ErrCodeInvalidTransition,
			"Cannot move order from %q to %q", order.Status, req.Status)
	}

	found, err := s.orderRepo.UpdateStatus(ctx, orderID, req.Status, req.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !found {
		return nil, model.ErrOrderNotFound
	}

	order.Status = req.Status
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("status", req.Status).
		Msg("order status updated")

	return order, nil
}
