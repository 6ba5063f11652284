package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testShopTemplate = "Order: %%foreach products: $product x$quantity%% total {{total}} {{currency}}"

type checkoutFixture struct {
	store   *memStore
	sink    *recordingSink
	runner  *BackgroundRunner
	service usecase.OrderUsecase

	buyerID uuid.UUID
	ownerID uuid.UUID
	shopA   *entity.Shop
	shopB   *entity.Shop
	now     time.Time
}

func newCheckoutFixture(t *testing.T, configure ...func(cfg *config.CheckoutConfig)) *checkoutFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemStore()
	sink := &recordingSink{}
	runner := newBackgroundRunner(time.Second, logger)

	checkout := &config.CheckoutConfig{
		DeepLinkBase:   "whatsapp://send",
		DecrementStock: true,
		NotifyTimeout:  time.Second,
	}
	for _, apply := range configure {
		apply(checkout)
	}

	f := &checkoutFixture{
		store:   store,
		sink:    sink,
		runner:  runner,
		buyerID: uuid.New(),
		ownerID: uuid.New(),
		now:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	f.shopA = &entity.Shop{
		ID:              uuid.New(),
		OwnerID:         f.ownerID,
		Title:           "Shop A",
		Phone:           "+1 555 0100",
		MessageTemplate: testShopTemplate,
		UniqueID:        "shop-a",
		IsActive:        true,
	}
	f.shopB = &entity.Shop{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Title:           "Shop B",
		MessageTemplate: testShopTemplate,
		UniqueID:        "shop-b",
		IsActive:        true,
	}
	store.putShop(f.shopA)
	store.putShop(f.shopB)
	store.putUser(&entity.User{ID: f.ownerID, Email: "owner@example.com", Name: "Owner"})

	f.service = NewOrderService(OrderServiceParams{
		TxManager: store,
		UserRepo:  memUserRepo{store},
		Guard: NewAccessGuard(AccessGuardParams{
			ShopRepo:  memShopRepo{store},
			OrderRepo: memOrderRepo{store},
		}),
		Sink:   sink,
		Runner: runner,
		Config: &config.Config{Checkout: checkout},
		Logger: logger,
	})

	return f
}

func (f *checkoutFixture) addProduct(shop *entity.Shop, title, price string, stock int) *entity.Product {
	product := &entity.Product{
		ID:       uuid.New(),
		ShopID:   shop.ID,
		Title:    title,
		Price:    decimal.RequireFromString(price),
		Currency: constants.DefaultCurrency,
		Stock:    stock,
	}
	f.store.putProduct(product)

	return product
}

// fillCart stores a cart for userID whose lines follow the given order,
// most recent first.
func (f *checkoutFixture) fillCart(userID uuid.UUID, lines ...entity.CartLine) *entity.Cart {
	for i := range lines {
		lines[i].AddedAt = f.now.Add(-time.Duration(i) * time.Minute)
	}

	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Lines: lines}
	f.store.putCart(cart)

	return f.store.cart(userID)
}

func (f *checkoutFixture) drain(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, f.runner.Wait(ctx))
}

func line(shop *entity.Shop, product *entity.Product, quantity int) entity.CartLine {
	return entity.CartLine{ShopID: shop.ID, ProductID: product.ID, Quantity: quantity}
}

func TestOrderService_SubmitOrder_Success(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	widget := f.addProduct(f.shopA, "Widget", "10.50", 5)
	gadget := f.addProduct(f.shopB, "Gadget", "3.00", 2)
	before := f.fillCart(f.buyerID, line(f.shopA, widget, 2), line(f.shopB, gadget, 1))

	out, err := f.service.SubmitOrder(ctx, f.buyerID, f.shopA.ID)
	require.NoError(t, err)

	order := out.Order
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, f.buyerID, order.BuyerID)
	assert.Equal(t, f.shopA.ID, order.ShopID)
	assert.Equal(t, "21.00", order.Total.StringFixed(2))
	assert.Equal(t, "USD", order.Currency)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Widget", order.Lines[0].Title)
	assert.Equal(t, 2, order.Lines[0].Quantity)

	require.NotNil(t, out.Link)
	assert.Equal(t,
		"whatsapp://send?phone=%2B1%20555%200100&text=Order%3A%20Widget%20x2%20total%2021.00%20USD",
		*out.Link,
	)

	assert.Equal(t, 3, f.store.product(widget.ID).Stock)
	assert.Equal(t, 2, f.store.product(gadget.ID).Stock)

	after := f.store.cart(f.buyerID)
	assert.Equal(t, []entity.CartLine{before.Lines[1]}, after.Lines)

	f.drain(t)

	notified := f.sink.notified()
	require.Len(t, notified, 1)
	assert.Equal(t, f.ownerID, notified[0].UserID)
	assert.Equal(t, entity.NotificationTypeOrder, notified[0].Input.Type)
	assert.Equal(t, constants.EventNewOrder, notified[0].Input.Event)
	assert.Contains(t, notified[0].Input.Content, "21.00 USD")
	assert.Equal(t, "/orders/"+order.ID.String(), notified[0].Input.Link)

	emailed := f.sink.emailed()
	require.Len(t, emailed, 1)
	assert.Equal(t, "owner@example.com", emailed[0].Address)
}

func TestOrderService_SubmitOrder_InsufficientStockLeavesCartAndOrdersUnchanged(t *testing.T) {
	f := newCheckoutFixture(t)

	product := f.addProduct(f.shopA, "Product X", "10", 1)
	before := f.fillCart(f.buyerID, line(f.shopA, product, 2))

	out, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

	assert.Nil(t, out)
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.StockShortage{
		ProductID: product.ID.String(),
		Title:     "Product X",
		Requested: 2,
		Available: 1,
	}, appErr.Details())
	assert.Contains(t, appErr.Message(), "Product X")

	assert.Zero(t, f.store.orderCount())
	assert.Equal(t, before, f.store.cart(f.buyerID))
	assert.Equal(t, 1, f.store.product(product.ID).Stock)
}

func TestOrderService_SubmitOrder_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *checkoutFixture)
		wantErr error
	}{
		{
			name:    "no cart",
			setup:   func(*checkoutFixture) {},
			wantErr: domainerrors.ErrEmptyCart,
		},
		{
			name: "empty cart",
			setup: func(f *checkoutFixture) {
				f.fillCart(f.buyerID)
			},
			wantErr: domainerrors.ErrEmptyCart,
		},
		{
			name: "only other shop items",
			setup: func(f *checkoutFixture) {
				f.fillCart(f.buyerID, line(f.shopB, f.addProduct(f.shopB, "Gadget", "3", 4), 1))
			},
			wantErr: domainerrors.ErrNoItemsForShop,
		},
		{
			name: "product deleted after add",
			setup: func(f *checkoutFixture) {
				f.fillCart(f.buyerID, entity.CartLine{ShopID: f.shopA.ID, ProductID: uuid.New(), Quantity: 1})
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name: "shop deactivated",
			setup: func(f *checkoutFixture) {
				f.fillCart(f.buyerID, line(f.shopA, f.addProduct(f.shopA, "Widget", "1", 4), 1))
				closed := *f.shopA
				closed.IsActive = false
				f.store.putShop(&closed)
			},
			wantErr: domainerrors.ErrShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			tt.setup(f)

			_, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.store.orderCount())
		})
	}
}

func TestOrderService_SubmitOrder_SnapshotSurvivesPriceChange(t *testing.T) {
	f := newCheckoutFixture(t)

	product := f.addProduct(f.shopA, "Widget", "10.00", 5)
	f.fillCart(f.buyerID, line(f.shopA, product, 3))

	out, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)
	require.NoError(t, err)

	repriced := f.store.product(product.ID)
	repriced.Price = decimal.RequireFromString("99.99")
	repriced.Title = "Renamed"
	f.store.putProduct(repriced)

	stored := f.store.order(out.Order.ID)
	assert.Equal(t, "30.00", stored.Total.StringFixed(2))
	assert.Equal(t, "10.00", stored.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "Widget", stored.Lines[0].Title)
}

func TestOrderService_SubmitOrder_ConcurrentCheckoutsNeverOversell(t *testing.T) {
	f := newCheckoutFixture(t)

	const buyers = 8
	product := f.addProduct(f.shopA, "Limited", "5", 3)

	buyerIDs := make([]uuid.UUID, buyers)
	for i := range buyerIDs {
		buyerIDs[i] = uuid.New()
		f.fillCart(buyerIDs[i], line(f.shopA, product, 1))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for _, buyerID := range buyerIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.service.SubmitOrder(context.Background(), buyerID, f.shopA.ID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, domainerrors.ErrInsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()
	f.drain(t)

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, buyers-3, rejected)
	assert.Equal(t, 3, f.store.orderCount())
	assert.Equal(t, 0, f.store.product(product.ID).Stock)
}

func TestOrderService_SubmitOrder_StockLeftAloneWhenDecrementDisabled(t *testing.T) {
	f := newCheckoutFixture(t, func(cfg *config.CheckoutConfig) { cfg.DecrementStock = false })

	product := f.addProduct(f.shopA, "Widget", "1", 2)
	f.fillCart(f.buyerID, line(f.shopA, product, 2))

	_, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, f.store.product(product.ID).Stock)
}

func TestOrderService_SubmitOrder_MixedCurrency(t *testing.T) {
	setup := func(f *checkoutFixture) {
		usd := f.addProduct(f.shopA, "USD item", "1", 5)
		eur := f.addProduct(f.shopA, "EUR item", "2", 5)
		eur.Currency = "EUR"
		f.store.putProduct(eur)
		f.fillCart(f.buyerID, line(f.shopA, eur, 1), line(f.shopA, usd, 1))
	}

	t.Run("kept as observed by default", func(t *testing.T) {
		f := newCheckoutFixture(t)
		setup(f)

		out, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

		require.NoError(t, err)
		assert.Equal(t, "EUR", out.Order.Currency)
		assert.Equal(t, "3.00", out.Order.Total.StringFixed(2))
	})

	t.Run("rejected when configured", func(t *testing.T) {
		f := newCheckoutFixture(t, func(cfg *config.CheckoutConfig) { cfg.RejectMixedCurrency = true })
		setup(f)

		_, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

		assert.ErrorIs(t, err, domainerrors.ErrMixedCurrency)
		assert.Zero(t, f.store.orderCount())
	})
}

func TestOrderService_SubmitOrder_FailedCreateRollsBackStock(t *testing.T) {
	f := newCheckoutFixture(t)

	product := f.addProduct(f.shopA, "Widget", "1", 4)
	before := f.fillCart(f.buyerID, line(f.shopA, product, 2))
	f.store.failOrderCreate = errors.New("disk full")

	_, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

	require.ErrorContains(t, err, "disk full")
	assert.Equal(t, 4, f.store.product(product.ID).Stock)
	assert.Equal(t, before, f.store.cart(f.buyerID))
}

func TestOrderService_SubmitOrder_NotificationFailureDoesNotFailOrder(t *testing.T) {
	tests := []struct {
		name      string
		notifyErr error
		panics    bool
	}{
		{name: "notify returns error", notifyErr: errors.New("push down")},
		{name: "notify panics", panics: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.sink.notifyErr = tt.notifyErr
			f.sink.panicOnNotify = tt.panics

			product := f.addProduct(f.shopA, "Widget", "1", 4)
			f.fillCart(f.buyerID, line(f.shopA, product, 1))

			out, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

			require.NoError(t, err)
			assert.NotNil(t, out.Order)
			f.drain(t)
			assert.Equal(t, 1, f.store.orderCount())
		})
	}
}

func TestOrderService_SubmitOrder_OwnerNotifiedThroughSink(t *testing.T) {
	tests := []struct {
		name     string
		owner    *entity.User
		ownerErr error
		emailErr error
	}{
		{name: "push and email", owner: &entity.User{Email: "owner@example.com"}},
		{name: "email failure is swallowed", owner: &entity.User{Email: "owner@example.com"}, emailErr: errors.New("smtp down")},
		{name: "unknown owner skips email", ownerErr: repository.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			product := f.addProduct(f.shopA, "Widget", "4.00", 3)
			f.fillCart(f.buyerID, line(f.shopA, product, 2))

			userRepo := mockRepo.NewMockUserRepository(t)
			sink := mockService.NewMockNotificationSink(t)

			sink.EXPECT().
				Notify(mock.Anything, f.ownerID, mock.MatchedBy(func(input service.NotificationInput) bool {
					return input.Event == constants.EventNewOrder &&
						input.Data["shop_id"] == f.shopA.ID.String()
				})).
				Return(nil).
				Once()
			userRepo.EXPECT().FindByID(mock.Anything, f.ownerID).Return(tt.owner, tt.ownerErr).Once()
			if tt.owner != nil {
				sink.EXPECT().
					SendEmail(mock.Anything, tt.owner.Email, "New order on Shop A", mock.AnythingOfType("string")).
					Return(tt.emailErr).
					Once()
			}

			srv := NewOrderService(OrderServiceParams{
				TxManager: f.store,
				UserRepo:  userRepo,
				Guard: NewAccessGuard(AccessGuardParams{
					ShopRepo:  memShopRepo{f.store},
					OrderRepo: memOrderRepo{f.store},
				}),
				Sink:   sink,
				Runner: f.runner,
				Config: &config.Config{Checkout: &config.CheckoutConfig{DeepLinkBase: "whatsapp://send", DecrementStock: true}},
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			out, err := srv.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)
			require.NoError(t, err)
			assert.Equal(t, "8.00", out.Order.Total.StringFixed(2))

			f.drain(t)
			assert.Equal(t, 1, f.store.orderCount())
		})
	}
}

func TestOrderService_SubmitOrder_MalformedTemplateYieldsNilLink(t *testing.T) {
	f := newCheckoutFixture(t)

	broken := *f.shopA
	broken.MessageTemplate = "%%foreach products: $product"
	f.store.putShop(&broken)

	product := f.addProduct(f.shopA, "Widget", "1", 4)
	f.fillCart(f.buyerID, line(f.shopA, product, 1))

	out, err := f.service.SubmitOrder(context.Background(), f.buyerID, f.shopA.ID)

	require.NoError(t, err)
	assert.NotNil(t, out.Order)
	assert.Nil(t, out.Link)
	assert.Equal(t, 1, f.store.orderCount())
	f.drain(t)
}

// placeOrderFor stores a pending order of the fixture buyer on shop A.
func (f *checkoutFixture) placeOrderFor(t *testing.T) *entity.Order {
	t.Helper()

	product := f.addProduct(f.shopA, "Widget", "4", 10)
	order := entity.NewOrder(f.buyerID, f.shopA.ID, []entity.OrderLine{{
		ProductID: product.ID,
		Title:     product.Title,
		Quantity:  1,
		UnitPrice: product.Price,
		Currency:  product.Currency,
	}}, f.now)
	f.store.putOrder(order)

	return order
}

func TestOrderService_ApproveOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	order := f.placeOrderFor(t)

	approved, err := f.service.ApproveOrder(context.Background(), f.ownerID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, approved.Status)
	assert.Equal(t, entity.OrderStatusApproved, f.store.order(order.ID).Status)

	f.drain(t)
	notified := f.sink.notified()
	require.Len(t, notified, 1)
	assert.Equal(t, f.buyerID, notified[0].UserID)
	assert.Equal(t, constants.EventOrderApproved, notified[0].Input.Event)
}

func TestOrderService_TerminalStatesRejectTransitions(t *testing.T) {
	f := newCheckoutFixture(t)
	order := f.placeOrderFor(t)
	ctx := context.Background()

	_, err := f.service.ApproveOrder(ctx, f.ownerID, order.ID)
	require.NoError(t, err)

	_, err = f.service.DeclineOrder(ctx, f.ownerID, order.ID, "changed my mind")
	require.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)

	_, err = f.service.ApproveOrder(ctx, f.ownerID, order.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)

	stored := f.store.order(order.ID)
	assert.Equal(t, entity.OrderStatusApproved, stored.Status)
	assert.Empty(t, stored.DeclineReason)
	f.drain(t)
}

func TestOrderService_DeclineOrder_CarriesReason(t *testing.T) {
	f := newCheckoutFixture(t)
	order := f.placeOrderFor(t)

	declined, err := f.service.DeclineOrder(context.Background(), f.ownerID, order.ID, "  out of season ")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDeclined, declined.Status)
	assert.Equal(t, "out of season", f.store.order(order.ID).DeclineReason)

	f.drain(t)
	notified := f.sink.notified()
	require.Len(t, notified, 1)
	assert.Equal(t, entity.NotificationTypeOrderDeclined, notified[0].Input.Type)
	assert.Equal(t, "Your order has been declined: out of season", notified[0].Input.Content)
}

func TestOrderService_AccessRules(t *testing.T) {
	f := newCheckoutFixture(t)
	order := f.placeOrderFor(t)
	ctx := context.Background()
	stranger := uuid.New()

	_, err := f.service.ApproveOrder(ctx, f.buyerID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "buyer cannot approve")

	_, err = f.service.DeclineOrder(ctx, stranger, order.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "stranger cannot decline")

	_, err = f.service.GetOrder(ctx, stranger, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.service.ListShopOrders(ctx, f.buyerID, f.shopA.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	assert.ErrorIs(t, f.service.DeleteOrder(ctx, stranger, order.ID), domainerrors.ErrForbidden)

	_, err = f.service.ApproveOrder(ctx, f.ownerID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	got, err := f.service.GetOrder(ctx, f.buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	shopOrders, err := f.service.ListShopOrders(ctx, f.ownerID, f.shopA.ID)
	require.NoError(t, err)
	assert.Len(t, shopOrders, 1)

	assert.Equal(t, entity.OrderStatusPending, f.store.order(order.ID).Status)
}

func TestOrderService_DeleteOrder_AnyStateByParticipant(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	pending := f.placeOrderFor(t)
	require.NoError(t, f.service.DeleteOrder(ctx, f.buyerID, pending.ID))

	approved := f.placeOrderFor(t)
	_, err := f.service.ApproveOrder(ctx, f.ownerID, approved.ID)
	require.NoError(t, err)
	require.NoError(t, f.service.DeleteOrder(ctx, f.ownerID, approved.ID))

	assert.Zero(t, f.store.orderCount())

	mine, err := f.service.ListMyOrders(ctx, f.buyerID)
	require.NoError(t, err)
	assert.Empty(t, mine)
	f.drain(t)
}
