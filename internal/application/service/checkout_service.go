package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pasalpos/pasal-api/internal/config"
	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/enum"
	"github.com/pasalpos/pasal-api/internal/domain/repository"
	"github.com/pasalpos/pasal-api/internal/livequery"
	"github.com/pasalpos/pasal-api/pkg/apperror"
	"go.uber.org/zap"
)

// CheckoutService owns the carts of all open terminal sessions and the one
// operation with a real invariant: committing a cart as an immutable sale
// while decrementing stock, all-or-nothing.
type CheckoutService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	settings    *SettingsService
	bus         *livequery.Bus
	cfg         config.CheckoutConfig
	logger      *zap.Logger

	// commitMu serializes commits so two near-simultaneous checkouts cannot
	// read the same stock baseline and lose an update.
	commitMu sync.Mutex

	cartsMu sync.Mutex
	carts   map[uuid.UUID]*Cart

	now func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	settings *SettingsService,
	bus *livequery.Bus,
	cfg config.CheckoutConfig,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		settings:    settings,
		bus:         bus,
		cfg:         cfg,
		logger:      logger,
		carts:       make(map[uuid.UUID]*Cart),
		now:         time.Now,
	}
}

// Cart returns the cart for the session, creating it on first use.
func (s *CheckoutService) Cart(sessionID uuid.UUID) *Cart {
	s.cartsMu.Lock()
	defer s.cartsMu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = NewCart()
		s.carts[sessionID] = cart
	}
	return cart
}

// AddItem snapshots the product's current price into the session cart.
func (s *CheckoutService) AddItem(ctx context.Context, sessionID uuid.UUID, productID uint) (*Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	cart := s.Cart(sessionID)
	cart.AddItem(product)
	return cart, nil
}

// ChangeQuantity adjusts a cart line by delta (minimum quantity one).
func (s *CheckoutService) ChangeQuantity(sessionID uuid.UUID, productID uint, delta int) *Cart {
	cart := s.Cart(sessionID)
	cart.ChangeQuantity(productID, delta)
	return cart
}

// RemoveItem drops a line from the session cart.
func (s *CheckoutService) RemoveItem(sessionID uuid.UUID, productID uint) *Cart {
	cart := s.Cart(sessionID)
	cart.RemoveItem(productID)
	return cart
}

// ClearCart empties the session cart.
func (s *CheckoutService) ClearCart(sessionID uuid.UUID) {
	s.Cart(sessionID).Clear()
}

// CartView is the cart plus its current pricing, for display.
type CartView struct {
	Items  []CartItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// View prices the session cart with the current tax rate and the given
// discount (a decimal currency amount).
func (s *CheckoutService) View(ctx context.Context, sessionID uuid.UUID, discount float64) *CartView {
	cart := s.Cart(sessionID)
	return &CartView{
		Items:  cart.Items(),
		Totals: cart.Totals(s.settings.TaxRate(ctx), toCents(discount)),
	}
}

// Commit converts the session cart into a persisted sale and decrements
// stock, atomically. An empty cart is a no-op returning (nil, nil). On
// success the cart resets to empty.
func (s *CheckoutService) Commit(ctx context.Context, sessionID uuid.UUID, paymentMethod enum.PaymentMethod, discount float64) (*entity.Sale, error) {
	if !paymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method %q", paymentMethod))
	}

	cart := s.Cart(sessionID)
	if cart.IsEmpty() {
		return nil, nil
	}

	discountCents := toCents(discount)
	taxRate := s.settings.TaxRate(ctx)

	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	totals := cart.Totals(taxRate, discountCents)
	if s.cfg.ClampDiscount && discountCents > totals.SubTotal {
		return nil, apperror.NewBadRequestError("Discount exceeds subtotal")
	}

	items := cart.Items()
	sale := &entity.Sale{
		Date:          s.now(),
		SubTotal:      totals.SubTotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		PaymentMethod: paymentMethod,
		Items:         make([]entity.SaleItem, 0, len(items)),
	}
	for _, item := range items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	insufficient, err := s.saleRepo.CommitSale(ctx, sale, s.cfg.EnforceStock)
	if err != nil {
		return nil, err
	}
	if len(insufficient) > 0 {
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %s", strings.Join(insufficient, ", ")))
	}

	cart.Clear()
	s.bus.Notify(livequery.CollectionSales, livequery.CollectionProducts)

	s.logger.Info("sale committed",
		zap.Uint("sale_id", sale.ID),
		zap.Int("lines", len(sale.Items)),
		zap.Float64("total", sale.GetTotalDecimal()),
		zap.String("payment_method", paymentMethod.String()),
	)

	return s.saleRepo.GetByID(ctx, sale.ID)
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
