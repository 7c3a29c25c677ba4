package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/domain/pricing"
	"esquadrias_xpto/internal/usecase/interfaces"
	"esquadrias_xpto/pkg"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteAlreadyExists = errors.New("quote already exists")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
)

// QuoteInput is the full quote form as submitted. RequestToken, when present,
// becomes the quote id on creation so a double-submitted form collapses into
// a single record.
type QuoteInput struct {
	RequestToken      string
	CustomerName      string
	Phone             string
	Address           string
	Type              entities.ProductType
	HeightCM          float64
	WidthCM           float64
	FrameWidthCM      *float64
	NeedsInstallation bool
	LockIncluded      bool
	HingeIncluded     bool
	Status            entities.QuoteStatus
}

// SubmitResult carries the committed quote plus the two non-fatal outcomes of
// a submit: the derived order (or the error that prevented it) and the
// refreshed quote listing (or the error that prevented the refresh). A set
// OrderErr means the quote write committed but the order insert did not; the
// caller must surface that inconsistency, never roll the quote back.
type SubmitResult struct {
	Quote        entities.Quote
	CreatedOrder *entities.Order
	OrderErr     error
	Quotes       []entities.Quote
	RefreshErr   error
}

// IQuoteUseCase exposes the quote lifecycle:
//   - submit (create or update) with server-side price recomputation
//   - the derived-order side effect on the pending→approved transition
//   - the approved-quotes projection kept for the legacy order queue view

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, session entities.Session, in QuoteInput, existingQuoteID string) (SubmitResult, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	ListApprovedAsOrders(ctx context.Context) ([]entities.Order, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	orderRepo interfaces.IOrderRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, orderRepo interfaces.IOrderRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, orderRepo: orderRepo}
}

// SubmitQuote validates the form, recomputes the total and persists the quote.
// existingQuoteID selects update-vs-create. When the resulting status is
// approved and the quote was not already approved, exactly one Order is
// derived from it.
func (u *QuoteUseCase) SubmitQuote(ctx context.Context, session entities.Session, in QuoteInput, existingQuoteID string) (SubmitResult, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	existingQuoteID = strings.TrimSpace(existingQuoteID)

	// Never trust a client-supplied total; it may be stale.
	total := pricing.Total(pricing.Spec{
		Type:              in.Type,
		HeightCM:          in.HeightCM,
		WidthCM:           in.WidthCM,
		NeedsInstallation: in.NeedsInstallation,
		LockIncluded:      in.LockIncluded,
		HingeIncluded:     in.HingeIncluded,
	})

	status := in.Status
	if status == "" {
		status = entities.QuoteStatusPending
	}

	fieldErrs := pkg.FieldErrors{}
	if in.CustomerName == "" {
		fieldErrs["customer_name"] = "customer name is required"
	}
	if !in.Type.Valid() {
		fieldErrs["type"] = "product type is required"
	}
	if in.HeightCM <= 0 {
		fieldErrs["height"] = "height must be a positive number"
	}
	if in.WidthCM <= 0 {
		fieldErrs["width"] = "width must be a positive number"
	}
	if total == 0 {
		fieldErrs["total_price"] = "total price must resolve to a non-zero value"
	}
	if !status.Valid() {
		fieldErrs["status"] = "status must be pending, approved or rejected"
	}
	if len(fieldErrs) > 0 {
		return SubmitResult{}, fieldErrs
	}

	now := time.Now().UTC()
	var (
		q          entities.Quote
		prevStatus entities.QuoteStatus
		err        error
	)

	if existingQuoteID != "" {
		existing, getErr := u.repo.GetByID(ctx, existingQuoteID)
		if getErr != nil {
			return SubmitResult{}, getErr
		}
		if existing.ID == "" {
			return SubmitResult{}, ErrQuoteNotFound
		}
		prevStatus = existing.Status

		q = existing
		applyQuoteInput(&q, in, total, status)
		q.UpdatedAt = now

		q, err = u.repo.Update(ctx, q)
		if err != nil {
			return SubmitResult{}, err
		}
		if q.ID == "" {
			return SubmitResult{}, ErrQuoteNotFound
		}
	} else {
		id := strings.TrimSpace(in.RequestToken)
		if id == "" {
			id = uuid.NewString()
		}
		q = entities.Quote{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: session.UserID,
		}
		applyQuoteInput(&q, in, total, status)

		q, err = u.repo.Create(ctx, q)
		if err != nil {
			return SubmitResult{}, err
		}
		if q.ID == "" {
			// Conditional put lost: the request token was already used.
			return SubmitResult{}, ErrQuoteAlreadyExists
		}
	}

	res := SubmitResult{Quote: q}

	// Derive the order once, on the transition into approved. The quote write
	// above has already committed; a failure here is surfaced, not rolled back.
	if q.Status == entities.QuoteStatusApproved && prevStatus != entities.QuoteStatusApproved {
		order := entities.Order{
			ID:            uuid.NewString(),
			CustomerName:  q.CustomerName,
			Product:       q.Type,
			Quantity:      1,
			TotalPrice:    q.TotalPrice,
			Paid:          false,
			Status:        entities.OrderStatusQueued,
			SourceQuoteID: q.ID,
			CreatedAt:     now,
			CreatedBy:     session.UserID,
		}
		created, orderErr := u.orderRepo.Create(ctx, order)
		if orderErr != nil {
			log.Printf("[quote][usecase] derived order insert failed quote_id=%s err=%v", q.ID, orderErr)
			res.OrderErr = orderErr
		} else {
			res.CreatedOrder = &created
		}
	}

	// Re-read instead of merging optimistically; a stale list on failure is
	// acceptable and reported alongside the committed quote.
	quotes, refreshErr := u.ListQuotes(ctx)
	if refreshErr != nil {
		log.Printf("[quote][usecase] list refresh failed after submit quote_id=%s err=%v", q.ID, refreshErr)
		res.RefreshErr = refreshErr
	} else {
		res.Quotes = quotes
	}

	return res, nil
}

func applyQuoteInput(q *entities.Quote, in QuoteInput, total float64, status entities.QuoteStatus) {
	q.CustomerName = in.CustomerName
	q.Phone = in.Phone
	q.Address = in.Address
	q.Type = in.Type
	q.HeightCM = in.HeightCM
	q.WidthCM = in.WidthCM
	q.NeedsInstallation = in.NeedsInstallation
	q.TotalPrice = total
	q.Status = status

	// Options outside their product type are dropped rather than stored.
	if in.Type == entities.ProductCompleteDoor {
		q.FrameWidthCM = in.FrameWidthCM
	} else {
		q.FrameWidthCM = nil
	}
	if in.Type == entities.ProductDoorLeaf {
		q.LockIncluded = in.LockIncluded
		q.HingeIncluded = in.HingeIncluded
	} else {
		q.LockIncluded = false
		q.HingeIncluded = false
	}
}

// ListQuotes returns every quote except approved ones, newest first. Approved
// quotes graduate out of the quotes view into the orders view.
func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	quotes := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if q.Status != entities.QuoteStatusApproved {
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// DeleteQuote removes a quote. Orders already derived from it are untouched;
// the two records are independent once split.
func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return u.repo.Delete(ctx, id)
}

// ListApprovedAsOrders projects approved quotes into order-shaped records for
// the legacy order queue view. The projection is read-only and distinct from
// the persisted Order entity; nothing here is ever written back.
func (u *QuoteUseCase) ListApprovedAsOrders(ctx context.Context) ([]entities.Order, error) {
	approved, err := u.repo.ListByStatus(ctx, entities.QuoteStatusApproved)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(approved))
	for _, q := range approved {
		orders = append(orders, entities.Order{
			ID:            q.ID,
			CustomerName:  q.CustomerName,
			Product:       q.Type,
			Quantity:      1,
			TotalPrice:    q.TotalPrice,
			Paid:          false,
			Status:        entities.OrderStatusQueued,
			SourceQuoteID: q.ID,
			CreatedAt:     q.CreatedAt,
			CreatedBy:     q.CreatedBy,
		})
	}
	return orders, nil
}
