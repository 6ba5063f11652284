package impl

import (
	"context"
	"slices"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memStore is an in-memory datastore with transactional semantics: Execute
// runs one function at a time and restores the previous state on error.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	carts    map[uuid.UUID]*entity.Cart
	products map[uuid.UUID]*entity.Product
	shops    map[uuid.UUID]*entity.Shop
	orders   map[uuid.UUID]*entity.Order
	users    map[uuid.UUID]*entity.User

	failOrderCreate error
}

func newMemStore() *memStore {
	return &memStore{
		carts:    map[uuid.UUID]*entity.Cart{},
		products: map[uuid.UUID]*entity.Product{},
		shops:    map[uuid.UUID]*entity.Shop{},
		orders:   map[uuid.UUID]*entity.Order{},
		users:    map[uuid.UUID]*entity.User{},
	}
}

type memSnapshot struct {
	carts    map[uuid.UUID]*entity.Cart
	products map[uuid.UUID]*entity.Product
	shops    map[uuid.UUID]*entity.Shop
	orders   map[uuid.UUID]*entity.Order
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return memSnapshot{
		carts:    cloneMap(s.carts, cloneCart),
		products: cloneMap(s.products, cloneProduct),
		shops:    cloneMap(s.shops, cloneShop),
		orders:   cloneMap(s.orders, cloneOrder),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts = snap.carts
	s.products = snap.products
	s.shops = snap.shops
	s.orders = snap.orders
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

func (s *memStore) CartRepo() repository.CartRepository       { return memCartRepo{s} }
func (s *memStore) ProductRepo() repository.ProductRepository { return memProductRepo{s} }
func (s *memStore) ShopRepo() repository.ShopRepository       { return memShopRepo{s} }
func (s *memStore) OrderRepo() repository.OrderRepository     { return memOrderRepo{s} }
func (s *memStore) UserRepo() repository.UserRepository       { return memUserRepo{s} }

func (s *memStore) NotificationRepo() repository.NotificationRepository {
	panic("notification repository is not used by these flows")
}

// Accessors used by assertions.

func (s *memStore) cart(userID uuid.UUID) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[userID]; ok {
		return cloneCart(cart)
	}

	return nil
}

func (s *memStore) product(id uuid.UUID) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneProduct(s.products[id])
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders)
}

func (s *memStore) putCart(cart *entity.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.UserID] = cloneCart(cart)
}

func (s *memStore) putProduct(product *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = cloneProduct(product)
}

func (s *memStore) putShop(shop *entity.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[shop.ID] = cloneShop(shop)
}

func (s *memStore) putUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *memStore) putOrder(order *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = cloneOrder(order)
}

func (s *memStore) order(id uuid.UUID) *entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneOrder(s.orders[id])
}

// --- carts ---

type memCartRepo struct{ s *memStore }

func (r memCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if cart := r.s.cart(userID); cart != nil {
		return cart, nil
	}

	return nil, repository.ErrCartNotFound
}

func (r memCartRepo) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return r.FindByUserID(ctx, userID)
}

func (r memCartRepo) Save(_ context.Context, cart *entity.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	r.s.putCart(cart)

	return nil
}

// --- products ---

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.putProduct(product)

	return nil
}

func (r memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if product := r.s.product(id); product != nil {
		return product, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r memProductRepo) FindByIDsForUpdate(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if product := r.s.product(id); product != nil {
			products = append(products, product)
		}
	}

	return products, nil
}

func (r memProductRepo) FindByShop(_ context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var products []*entity.Product
	for _, product := range r.s.products {
		if product.ShopID == shopID {
			products = append(products, cloneProduct(product))
		}
	}
	if offset >= len(products) {
		return []*entity.Product{}, nil
	}

	return products[offset:min(offset+limit, len(products))], nil
}

func (r memProductRepo) Update(_ context.Context, product *entity.Product) error {
	stored := r.s.product(product.ID)
	if stored == nil {
		return repository.ErrProductNotFound
	}
	updated := cloneProduct(product)
	updated.Stock = stored.Stock
	r.s.putProduct(updated)

	return nil
}

func (r memProductRepo) SetStock(_ context.Context, id uuid.UUID, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.Stock = stock

	return nil
}

func (r memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.s.products, id)

	return nil
}

func (r memProductRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok || product.Stock < quantity {
		return repository.ErrStockConflict
	}
	product.Stock -= quantity

	return nil
}

func (r memProductRepo) ToggleLike(context.Context, uuid.UUID, uuid.UUID) (entity.ToggleResult, error) {
	return entity.ToggleResult{}, errors.New("not supported")
}

// --- shops ---

type memShopRepo struct{ s *memStore }

func (r memShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	r.s.putShop(shop)

	return nil
}

func (r memShopRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if shop, ok := r.s.shops[id]; ok {
		return cloneShop(shop), nil
	}

	return nil, repository.ErrShopNotFound
}

func (r memShopRepo) FindByUniqueID(_ context.Context, uniqueID string) (*entity.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, shop := range r.s.shops {
		if shop.UniqueID == uniqueID {
			return cloneShop(shop), nil
		}
	}

	return nil, repository.ErrShopNotFound
}

func (r memShopRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var shops []*entity.Shop
	for _, shop := range r.s.shops {
		if shop.OwnerID == ownerID {
			shops = append(shops, cloneShop(shop))
		}
	}

	return shops, nil
}

func (r memShopRepo) ExistsUniqueID(ctx context.Context, uniqueID string) (bool, error) {
	_, err := r.FindByUniqueID(ctx, uniqueID)

	return err == nil, nil
}

func (r memShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	r.s.putShop(shop)

	return nil
}

func (r memShopRepo) IncrementShares(context.Context, uuid.UUID) (int, error) {
	return 0, errors.New("not supported")
}

func (r memShopRepo) ToggleFollower(context.Context, uuid.UUID, uuid.UUID) (entity.ToggleResult, error) {
	return entity.ToggleResult{}, errors.New("not supported")
}

func (r memShopRepo) ToggleLike(context.Context, uuid.UUID, uuid.UUID) (entity.ToggleResult, error) {
	return entity.ToggleResult{}, errors.New("not supported")
}

// --- orders ---

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.s.failOrderCreate != nil {
		return r.s.failOrderCreate
	}
	r.s.putOrder(order)

	return nil
}

func (r memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if order := r.s.order(id); order != nil {
		return order, nil
	}

	return nil, repository.ErrOrderNotFound
}

func (r memOrderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.FindByID(ctx, id)
}

func (r memOrderRepo) FindByBuyer(_ context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	return r.filter(func(order *entity.Order) bool { return order.BuyerID == buyerID }), nil
}

func (r memOrderRepo) FindByShop(_ context.Context, shopID uuid.UUID) ([]*entity.Order, error) {
	return r.filter(func(order *entity.Order) bool { return order.ShopID == shopID }), nil
}

func (r memOrderRepo) filter(keep func(order *entity.Order) bool) []*entity.Order {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var orders []*entity.Order
	for _, order := range r.s.orders {
		if keep(order) {
			orders = append(orders, cloneOrder(order))
		}
	}

	return orders
}

func (r memOrderRepo) UpdateStatus(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.orders[order.ID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	stored.Status = order.Status
	stored.DeclineReason = order.DeclineReason
	stored.UpdatedAt = order.UpdatedAt

	return nil
}

func (r memOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.s.orders, id)

	return nil
}

// --- users ---

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if user, ok := r.s.users[id]; ok {
		copied := *user

		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) SetPrimaryShop(_ context.Context, userID, shopID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PrimaryShopID = &shopID

	return nil
}

// --- notification sink ---

type sinkCall struct {
	UserID uuid.UUID
	Input  service.NotificationInput
}

type emailCall struct {
	Address string
	Subject string
	Body    string
}

// recordingSink records deliveries; notifyErr and panicOnNotify simulate a
// broken delivery channel.
type recordingSink struct {
	mu            sync.Mutex
	notifications []sinkCall
	emails        []emailCall
	notifyErr     error
	panicOnNotify bool
}

func (s *recordingSink) Notify(_ context.Context, targetUserID uuid.UUID, input service.NotificationInput) error {
	if s.panicOnNotify {
		panic("delivery channel exploded")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, sinkCall{UserID: targetUserID, Input: input})

	return s.notifyErr
}

func (s *recordingSink) SendEmail(_ context.Context, address, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, emailCall{Address: address, Subject: subject, Body: body})

	return nil
}

func (s *recordingSink) notified() []sinkCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.notifications)
}

func (s *recordingSink) emailed() []emailCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.emails)
}

// --- copies ---

func cloneMap[T any](in map[uuid.UUID]*T, clone func(*T) *T) map[uuid.UUID]*T {
	out := make(map[uuid.UUID]*T, len(in))
	for id, v := range in {
		out[id] = clone(v)
	}

	return out
}

func cloneCart(cart *entity.Cart) *entity.Cart {
	if cart == nil {
		return nil
	}
	copied := *cart
	copied.Lines = slices.Clone(cart.Lines)

	return &copied
}

func cloneProduct(product *entity.Product) *entity.Product {
	if product == nil {
		return nil
	}
	copied := *product
	copied.Images = slices.Clone(product.Images)

	return &copied
}

func cloneShop(shop *entity.Shop) *entity.Shop {
	if shop == nil {
		return nil
	}
	copied := *shop
	copied.Tags = slices.Clone(shop.Tags)

	return &copied
}

func cloneOrder(order *entity.Order) *entity.Order {
	if order == nil {
		return nil
	}
	copied := *order
	copied.Lines = slices.Clone(order.Lines)

	return &copied
}
