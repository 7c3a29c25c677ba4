package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase/interfaces"
	"esquadrias_xpto/pkg"
)

var (
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrOrderAlreadyPaid           = errors.New("order already paid")
	ErrOrderCancelled             = errors.New("order cancelled")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// OrderUpdateInput carries the editable fields of an order. Nil pointers
// leave the stored value untouched. Status moves freely through the pipeline;
// there is deliberately no transition guard.
type OrderUpdateInput struct {
	CustomerName *string
	Quantity     *int
	Paid         *bool
	Status       *entities.OrderStatus
}

// IOrderUseCase exposes order management plus the payment flow.

type IOrderUseCase interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, in OrderUpdateInput) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ListHistory(ctx context.Context) ([]entities.Order, error)
	PayOrder(ctx context.Context, session entities.Session, orderID string, payload json.RawMessage) (entities.OrderPayment, entities.Order, error)
	ListPayments(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	paymentRepo interfaces.IOrderPaymentRepository
	gateway     interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, paymentRepo interfaces.IOrderPaymentRepository, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, paymentRepo: paymentRepo, gateway: gateway}
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, id string, in OrderUpdateInput) (entities.Order, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	fieldErrs := pkg.FieldErrors{}
	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			fieldErrs["customer_name"] = "customer name is required"
		} else {
			existing.CustomerName = name
		}
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			fieldErrs["quantity"] = "quantity must be a positive number"
		} else {
			existing.Quantity = *in.Quantity
		}
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			fieldErrs["status"] = "unknown order status"
		} else {
			existing.Status = *in.Status
		}
	}
	if in.Paid != nil {
		existing.Paid = *in.Paid
	}
	if len(fieldErrs) > 0 {
		return entities.Order{}, fieldErrs
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// DeleteOrder removes an order outright; quotes are never touched.
func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	return u.repo.Delete(ctx, id)
}

// ListHistory returns delivered orders, the read-only sales history.
func (u *OrderUseCase) ListHistory(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListByStatus(ctx, entities.OrderStatusDelivered)
}

// PayOrder charges the order total through the payment gateway, records the
// provider response and flips the order's paid flag. The stored order is the
// source of truth for the amount; whatever amount the payload carries is
// overwritten.
func (u *OrderUseCase) PayOrder(ctx context.Context, session entities.Session, orderID string, payload json.RawMessage) (entities.OrderPayment, entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][usecase] pay start order_id=%s user_id=%s payload_len=%d", orderID, session.UserID, len(payload))
	if orderID == "" {
		return entities.OrderPayment{}, entities.Order{}, ErrInvalidOrderID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.OrderPayment{}, entities.Order{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.OrderPayment{}, entities.Order{}, errors.New("payment gateway not configured")
	}

	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderPayment{}, entities.Order{}, err
	}
	if order.Paid {
		return entities.OrderPayment{}, entities.Order{}, ErrOrderAlreadyPaid
	}
	if order.Status == entities.OrderStatusCancelled {
		return entities.OrderPayment{}, entities.Order{}, ErrOrderCancelled
	}

	// external_reference lets the provider reconcile events back to us.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.OrderPayment{}, entities.Order{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Pedido %s", order.ID)
	}
	reqMap["transaction_amount"] = order.TotalPrice
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", orderID, err)
		if isGatewayUnauthorized(err) {
			return entities.OrderPayment{}, entities.Order{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.OrderPayment{}, entities.Order{}, ErrPaymentGatewayBadRequest
		}
		return entities.OrderPayment{}, entities.Order{}, err
	}
	log.Printf("[payment][usecase] gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	p := entities.OrderPayment{
		ID:                 providerPaymentID,
		OrderID:            order.ID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment record create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.OrderPayment{}, entities.Order{}, err
	}

	paid, err := u.repo.UpdatePaid(ctx, order.ID, true)
	if err != nil {
		// Payment is recorded; the paid flag can be fixed by a later edit.
		log.Printf("[payment][usecase] paid flag update failed order_id=%s payment_id=%s err=%v", orderID, created.ID, err)
		return created, order, err
	}

	log.Printf("[payment][usecase] pay success order_id=%s payment_id=%s", orderID, created.ID)
	return created, paid, nil
}

func (u *OrderUseCase) ListPayments(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.paymentRepo.ListByOrderID(ctx, orderID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
