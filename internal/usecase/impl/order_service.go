package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/msgtemplate"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	guard     service.AccessGuard
	sink      service.NotificationSink
	runner    *BackgroundRunner
	checkout  config.CheckoutConfig
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Guard     service.AccessGuard
	Sink      service.NotificationSink
	Runner    *BackgroundRunner
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		guard:     params.Guard,
		sink:      params.Sink,
		runner:    params.Runner,
		checkout:  *params.Config.Checkout,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitOrder checks out the user's cart lines for one shop. Stock validation,
// order creation and cart pruning commit together; the owner notification and
// the merchant deep-link are produced after commit and never fail the order.
func (srv *orderService) SubmitOrder(ctx context.Context, userID, shopID uuid.UUID) (*usecase.SubmitOrderOutput, error) {
	srv.log(ctx).Info("Submitting order", slog.Any("userID", userID), slog.Any("shopID", shopID))

	var (
		order *entity.Order
		shop  *entity.Shop
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, shop, err = srv.placeOrder(ctx, repoFactory, userID, shopID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Order submission failed",
			slog.Any("userID", userID),
			slog.Any("shopID", shopID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("shopID", shopID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	srv.runner.Go(ctx, "notify_new_order", func(taskCtx context.Context) error {
		return srv.notifyNewOrder(taskCtx, order, shop)
	})

	return &usecase.SubmitOrderOutput{
		Order: order,
		Link:  srv.checkoutLink(ctx, shop, order),
	}, nil
}

// placeOrder runs inside the checkout transaction. The cart row and every
// product row are locked before stock is read, so the snapshotted quantities
// never exceed the stock observed at commit.
func (srv *orderService) placeOrder(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID, shopID uuid.UUID,
) (*entity.Order, *entity.Shop, error) {
	cartRepo := repoFactory.CartRepo()
	productRepo := repoFactory.ProductRepo()

	cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil, domainerrors.ErrEmptyCart
		}

		return nil, nil, errors.Wrap(err, "failed to lock cart")
	}
	if cart.IsEmpty() {
		return nil, nil, domainerrors.ErrEmptyCart
	}

	lines := cart.LinesForShop(shopID)
	if len(lines) == 0 {
		return nil, nil, domainerrors.ErrNoItemsForShop
	}

	shop, err := repoFactory.ShopRepo().FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, nil, domainerrors.ErrShopNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find shop")
	}
	if !shop.IsActive {
		return nil, nil, domainerrors.ErrShopNotFound
	}

	products, err := srv.lockProducts(ctx, productRepo, shopID, lines)
	if err != nil {
		return nil, nil, err
	}

	orderLines := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		product := products[line.ProductID]
		currency := product.Currency
		if currency == "" {
			currency = constants.DefaultCurrency
		}

		orderLines = append(orderLines, entity.OrderLine{
			ProductID: product.ID,
			Title:     product.Title,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Currency:  currency,
		})
	}

	if srv.checkout.RejectMixedCurrency && entity.HasMixedCurrency(orderLines) {
		return nil, nil, domainerrors.ErrMixedCurrency
	}

	if srv.checkout.DecrementStock {
		for _, line := range lines {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrStockConflict) {
					return nil, nil, insufficientStock(products[line.ProductID], line.Quantity)
				}

				return nil, nil, errors.Wrap(err, "failed to decrement stock")
			}
		}
	}

	now := srv.now()
	order := entity.NewOrder(userID, shopID, orderLines, now)
	if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create order")
	}

	cart.RemoveShopLines(shopID, now)
	if err := cartRepo.Save(ctx, cart); err != nil {
		return nil, nil, errors.Wrap(err, "failed to prune cart")
	}

	return order, shop, nil
}

// lockProducts re-reads the products of lines under a row lock and checks
// they still exist, still belong to shopID and still have enough stock.
func (srv *orderService) lockProducts(
	ctx context.Context,
	productRepo repository.ProductRepository,
	shopID uuid.UUID,
	lines []entity.CartLine,
) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})

	locked, err := productRepo.FindByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	products := make(map[uuid.UUID]*entity.Product, len(locked))
	for _, product := range locked {
		products[product.ID] = product
	}

	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok || product.ShopID != shopID {
			return nil, domainerrors.ErrProductNotFound.WithDetails(map[string]string{
				"product_id": line.ProductID.String(),
			})
		}

		if !product.HasStock(line.Quantity) {
			return nil, insufficientStock(product, line.Quantity)
		}
	}

	return products, nil
}

func insufficientStock(product *entity.Product, requested int) error {
	return domainerrors.NewInsufficientStockError(domainerrors.StockShortage{
		ProductID: product.ID.String(),
		Title:     product.Title,
		Requested: requested,
		Available: product.Stock,
	})
}

// notifyNewOrder tells the shop owner about a new order through the inbox,
// the push channel and email.
func (srv *orderService) notifyNewOrder(ctx context.Context, order *entity.Order, shop *entity.Shop) error {
	content := fmt.Sprintf("New order received on %s: total %s %s",
		shop.Title, order.Total.StringFixed(2), order.Currency)

	var errs []error

	if err := srv.sink.Notify(ctx, shop.OwnerID, service.NotificationInput{
		Type:    entity.NotificationTypeOrder,
		Event:   constants.EventNewOrder,
		Content: content,
		Link:    orderLink(order.ID),
		Data: map[string]string{
			"order_id": order.ID.String(),
			"shop_id":  shop.ID.String(),
		},
	}); err != nil {
		errs = append(errs, errors.Wrap(err, "notify owner"))
	}

	owner, err := srv.userRepo.FindByID(ctx, shop.OwnerID)
	if err != nil {
		errs = append(errs, errors.Wrap(err, "load owner for email"))
	} else if err := srv.sink.SendEmail(ctx, owner.Email, "New order on "+shop.Title, content); err != nil {
		errs = append(errs, errors.Wrap(err, "email owner"))
	}

	if len(errs) > 0 {
		srv.log(ctx).Warn("Owner notification incomplete",
			slog.Any("orderID", order.ID),
			slog.Any("shopID", shop.ID),
		)
	}

	return errors.Join(errs...)
}

// checkoutLink renders the shop's message template and wraps it into a
// deep-link. A template that cannot be rendered yields no link.
func (srv *orderService) checkoutLink(ctx context.Context, shop *entity.Shop, order *entity.Order) *string {
	items := make([]msgtemplate.Item, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, msgtemplate.Item{Title: line.Title, Quantity: line.Quantity})
	}

	message, err := msgtemplate.Render(shop.MessageTemplate, msgtemplate.Data{
		Products: items,
		Vars: map[string]string{
			"total":    order.Total.StringFixed(2),
			"currency": order.Currency,
			"shop":     shop.Title,
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to render shop message template",
			slog.Any("orderID", order.ID),
			slog.Any("shopID", shop.ID),
			slog.Any("error", err),
		)

		return nil
	}

	link := buildDeepLink(srv.checkout.DeepLinkBase, shop.Phone, message)

	return &link
}

// ListMyOrders lists the orders placed by userID, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByBuyer(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find orders by buyer")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListShopOrders lists a shop's orders for its owner.
func (srv *orderService) ListShopOrders(ctx context.Context, userID, shopID uuid.UUID) ([]*entity.Order, error) {
	owns, err := srv.guard.ResolveShopOwnership(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domainerrors.ErrForbidden.WithMessage("Only the shop owner can view its orders")
	}

	var orders []*entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByShop(ctx, shopID)
		if err != nil {
			return errors.Wrap(err, "failed to find orders by shop")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	return orders, nil
}

// GetOrder returns an order to its buyer or to the owner of its shop.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	participant, err := srv.guard.ResolveOrderParticipant(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if !participant.Any() {
		return nil, domainerrors.ErrForbidden.WithMessage("Not a participant of this order")
	}

	var order *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ApproveOrder moves a pending order to approved and tells the buyer.
func (srv *orderService) ApproveOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.transition(ctx, userID, orderID, func(order *entity.Order, now time.Time) error {
		return order.Approve(now)
	})
	if err != nil {
		return nil, err
	}

	srv.runner.Go(ctx, "notify_order_approved", func(taskCtx context.Context) error {
		return srv.sink.Notify(taskCtx, order.BuyerID, service.NotificationInput{
			Type:    entity.NotificationTypeOrderApproved,
			Event:   constants.EventOrderApproved,
			Content: "Your order has been approved",
			Link:    orderLink(order.ID),
			Data:    map[string]string{"order_id": order.ID.String()},
		})
	})

	return order, nil
}

// DeclineOrder moves a pending order to declined and tells the buyer,
// including the reason when one was given.
func (srv *orderService) DeclineOrder(ctx context.Context, userID, orderID uuid.UUID, reason string) (*entity.Order, error) {
	reason = strings.TrimSpace(reason)

	order, err := srv.transition(ctx, userID, orderID, func(order *entity.Order, now time.Time) error {
		return order.Decline(reason, now)
	})
	if err != nil {
		return nil, err
	}

	content := "Your order has been declined"
	if reason != "" {
		content += ": " + reason
	}

	srv.runner.Go(ctx, "notify_order_declined", func(taskCtx context.Context) error {
		return srv.sink.Notify(taskCtx, order.BuyerID, service.NotificationInput{
			Type:    entity.NotificationTypeOrderDeclined,
			Event:   constants.EventOrderDeclined,
			Content: content,
			Link:    orderLink(order.ID),
			Data:    map[string]string{"order_id": order.ID.String()},
		})
	})

	return order, nil
}

// transition applies change to a locked order after checking that userID
// owns the order's shop.
func (srv *orderService) transition(
	ctx context.Context,
	userID, orderID uuid.UUID,
	change func(order *entity.Order, now time.Time) error,
) (*entity.Order, error) {
	participant, err := srv.guard.ResolveOrderParticipant(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if !participant.IsOwner {
		return nil, domainerrors.ErrForbidden.WithMessage("Only the shop owner can process this order")
	}

	var order *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if err := change(found, srv.now()); err != nil {
			if errors.Is(err, entity.ErrInvalidTransition) {
				return domainerrors.ErrInvalidStateTransition.WithDetails(map[string]string{
					"status": string(found.Status),
				})
			}

			return err
		}

		if err := orderRepo.UpdateStatus(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order transition rejected", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order transitioned", slog.Any("orderID", order.ID), slog.String("status", string(order.Status)))

	return order, nil
}

// DeleteOrder removes an order in any state for its buyer or shop owner.
func (srv *orderService) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	participant, err := srv.guard.ResolveOrderParticipant(ctx, orderID, userID)
	if err != nil {
		return err
	}
	if !participant.Any() {
		return domainerrors.ErrForbidden.WithMessage("Not a participant of this order")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Delete(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", orderID), slog.Any("userID", userID))

	return nil
}

func orderLink(orderID uuid.UUID) string {
	return "/orders/" + orderID.String()
}
