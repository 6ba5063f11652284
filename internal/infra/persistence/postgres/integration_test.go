//go:build integration

package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx/fxtest"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a throwaway PostgreSQL and migrates every model into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "bazaar",
				"POSTGRES_PASSWORD": "bazaar",
				"POSTGRES_DB":       "bazaar_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=bazaar password=bazaar dbname=bazaar_test sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	// Stock images lack the pg_uuidv7 extension; random ids are enough here.
	require.NoError(t, db.Exec(`CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT gen_random_uuid()' LANGUAGE sql`).Error)
	require.NoError(t, db.AutoMigrate(
		&model.ShopModel{},
		&model.UserModel{},
		&model.ShopFollowerModel{},
		&model.ShopLikeModel{},
		&model.ProductModel{},
		&model.ProductLikeModel{},
		&model.CartModel{},
		&model.CartLineModel{},
		&model.OrderModel{},
		&model.OrderLineModel{},
		&model.NotificationModel{},
		&model.UserDeviceModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&model.UserModel{ID: id, Email: id.String() + "@example.com", Name: "Test"}).Error)

	return id
}

func seedShop(t *testing.T, db *gorm.DB, ownerID uuid.UUID, uniqueID string) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Title:           "Corner Bakery",
		Phone:           "+15550100",
		MessageTemplate: "Hello {{shop}}",
		UniqueID:        uniqueID,
		IsActive:        true,
	}
	require.NoError(t, NewShopRepository(db).Create(context.Background(), shop))

	return shop
}

func seedProduct(t *testing.T, db *gorm.DB, shopID uuid.UUID, title string, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:       uuid.New(),
		ShopID:   shopID,
		Title:    title,
		Price:    decimal.RequireFromString("2.50"),
		Currency: "USD",
		Stock:    stock,
		Images:   []string{},
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func seedCart(t *testing.T, db *gorm.DB, userID uuid.UUID, products map[*entity.Product]int) {
	t.Helper()

	cart := entity.NewCart(userID)
	now := time.Now()
	for product, quantity := range products {
		require.NoError(t, cart.AddLine(product.ShopID, product, quantity, now))
	}
	require.NoError(t, NewCartRepository(db).Save(context.Background(), cart))
}

// newCheckoutService wires the order service onto the real transaction
// manager and repositories.
func newCheckoutService(t *testing.T, db *gorm.DB) (usecase.OrderUsecase, *impl.BackgroundRunner) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Database: &config.DatabaseConfig{TxMaxRetries: 3, TxRetryBackoff: 5 * time.Millisecond},
		Checkout: &config.CheckoutConfig{
			DeepLinkBase:   "whatsapp://send",
			DecrementStock: true,
			NotifyTimeout:  time.Second,
		},
	}

	sink := mockService.NewMockNotificationSink(t)
	sink.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	sink.EXPECT().SendEmail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	lc := fxtest.NewLifecycle(t)
	runner := impl.NewBackgroundRunner(impl.BackgroundRunnerParams{Lifecycle: lc, Config: cfg, Logger: log})

	service := impl.NewOrderService(impl.OrderServiceParams{
		TxManager: NewTransactionManager(db, cfg, log),
		UserRepo:  NewUserRepository(db),
		Guard: impl.NewAccessGuard(impl.AccessGuardParams{
			ShopRepo:  NewShopRepository(db),
			OrderRepo: NewOrderRepository(db),
		}),
		Sink:   sink,
		Runner: runner,
		Config: cfg,
		Logger: log,
	})

	return service, runner
}

func TestIntegration_Checkout(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("concurrent checkouts never oversell", func(t *testing.T) {
		const stock = 5
		const buyers = 12

		service, runner := newCheckoutService(t, db)
		owner := seedUser(t, db)
		shop := seedShop(t, db, owner, "race-"+owner.String()[:8])
		product := seedProduct(t, db, shop.ID, "Last loaves", stock)

		buyerIDs := make([]uuid.UUID, buyers)
		for i := range buyerIDs {
			buyerIDs[i] = seedUser(t, db)
			seedCart(t, db, buyerIDs[i], map[*entity.Product]int{product: 1})
		}

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			placed    int
			shortages int
			failures  []error
		)
		start := make(chan struct{})
		for _, buyerID := range buyerIDs {
			wg.Add(1)
			go func(buyerID uuid.UUID) {
				defer wg.Done()
				<-start

				_, err := service.SubmitOrder(ctx, buyerID, shop.ID)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					placed++
				case errors.Is(err, domainerrors.ErrInsufficientStock):
					shortages++
				default:
					failures = append(failures, err)
				}
			}(buyerID)
		}
		close(start)
		wg.Wait()
		require.NoError(t, runner.Wait(ctx))

		require.Empty(t, failures)
		assert.Equal(t, stock, placed)
		assert.Equal(t, buyers-stock, shortages)

		orders, err := NewOrderRepository(db).FindByShop(ctx, shop.ID)
		require.NoError(t, err)
		assert.Len(t, orders, stock)

		stored, err := NewProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Stock)
	})

	t.Run("checkout keeps other shops' cart lines", func(t *testing.T) {
		service, runner := newCheckoutService(t, db)
		ownerA := seedUser(t, db)
		ownerB := seedUser(t, db)
		shopA := seedShop(t, db, ownerA, "part-a-"+ownerA.String()[:8])
		shopB := seedShop(t, db, ownerB, "part-b-"+ownerB.String()[:8])
		bread := seedProduct(t, db, shopA.ID, "Bread", 10)
		jam := seedProduct(t, db, shopA.ID, "Jam", 10)
		honey := seedProduct(t, db, shopB.ID, "Honey", 10)

		buyer := seedUser(t, db)
		seedCart(t, db, buyer, map[*entity.Product]int{bread: 2, jam: 1, honey: 3})

		out, err := service.SubmitOrder(ctx, buyer, shopA.ID)
		require.NoError(t, err)
		require.NoError(t, runner.Wait(ctx))
		assert.Len(t, out.Order.Lines, 2)
		assert.Equal(t, "7.50", out.Order.Total.StringFixed(2))

		var lines []model.CartLineModel
		require.NoError(t, db.Joins("JOIN carts ON carts.id = cart_lines.cart_id").
			Where("carts.user_id = ?", buyer).
			Find(&lines).Error)
		require.Len(t, lines, 1)
		assert.Equal(t, honey.ID, lines[0].ProductID)
		assert.Equal(t, shopB.ID, lines[0].ShopID)
		assert.Equal(t, 3, lines[0].Quantity)

		products := NewProductRepository(db)
		storedBread, err := products.FindByID(ctx, bread.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, storedBread.Stock)
		storedHoney, err := products.FindByID(ctx, honey.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, storedHoney.Stock)

		_, err = service.SubmitOrder(ctx, buyer, shopA.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNoItemsForShop)
	})

	t.Run("product update leaves stock to SetStock", func(t *testing.T) {
		repo := NewProductRepository(db)
		owner := seedUser(t, db)
		shop := seedShop(t, db, owner, "edit-"+owner.String()[:8])
		product := seedProduct(t, db, shop.ID, "Bread", 5)

		require.NoError(t, repo.DecrementStock(ctx, product.ID, 2))

		product.Title = "Sourdough"
		require.NoError(t, repo.Update(ctx, product))

		stored, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sourdough", stored.Title)
		assert.Equal(t, 3, stored.Stock)

		require.NoError(t, repo.SetStock(ctx, product.ID, 9))
		stored, err = repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 9, stored.Stock)

		assert.Error(t, repo.SetStock(ctx, product.ID, -1))
		assert.ErrorIs(t, repo.SetStock(ctx, uuid.New(), 1), repository.ErrProductNotFound)
	})
}

func TestIntegration_PostgresRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("device upsert refreshes and releases tokens", func(t *testing.T) {
		repo := NewDeviceRepository(db)
		alice := seedUser(t, db)
		bob := seedUser(t, db)

		first := &entity.UserDevice{UserID: alice, DeviceID: "pixel-8", FCMToken: "tok-1", Platform: entity.PlatformAndroid, IsActive: true}
		require.NoError(t, repo.Upsert(ctx, first))
		require.NotEqual(t, uuid.Nil, first.ID)

		again := &entity.UserDevice{UserID: alice, DeviceID: "pixel-8", FCMToken: "tok-2", Platform: entity.PlatformAndroid, IsActive: true}
		require.NoError(t, repo.Upsert(ctx, again))
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "tok-2", again.FCMToken)

		// Same handset signs in as bob.
		handover := &entity.UserDevice{UserID: bob, DeviceID: "pixel-8", FCMToken: "tok-2", Platform: entity.PlatformAndroid, IsActive: true}
		require.NoError(t, repo.Upsert(ctx, handover))

		aliceTokens, err := repo.FindActiveTokensByUser(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, aliceTokens)

		bobTokens, err := repo.FindActiveTokensByUser(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, []string{"tok-2"}, bobTokens)

		removed, err := repo.DeleteByTokens(ctx, []string{"tok-2"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, removed)
	})

	t.Run("invalid platform is rejected by the check constraint", func(t *testing.T) {
		err := NewDeviceRepository(db).Upsert(ctx, &entity.UserDevice{
			UserID: seedUser(t, db), DeviceID: "pc", FCMToken: "tok-pc", Platform: "windows", IsActive: true,
		})

		assert.Error(t, err)
	})

	t.Run("shop unique id collision", func(t *testing.T) {
		owner := seedUser(t, db)
		seedShop(t, db, owner, "corner-bakery")

		dup := &entity.Shop{ID: uuid.New(), OwnerID: owner, Title: "Copy", Phone: "1", MessageTemplate: "x", UniqueID: "corner-bakery"}
		assert.ErrorIs(t, NewShopRepository(db).Create(ctx, dup), repository.ErrUniqueIDTaken)
	})

	t.Run("primary shop must exist", func(t *testing.T) {
		repo := NewUserRepository(db)
		owner := seedUser(t, db)

		assert.ErrorIs(t, repo.SetPrimaryShop(ctx, owner, uuid.New()), repository.ErrShopNotFound)

		shop := seedShop(t, db, owner, "primary-"+owner.String()[:8])
		require.NoError(t, repo.SetPrimaryShop(ctx, owner, shop.ID))

		user, err := repo.FindByID(ctx, owner)
		require.NoError(t, err)
		require.NotNil(t, user.PrimaryShopID)
		assert.Equal(t, shop.ID, *user.PrimaryShopID)

		assert.ErrorIs(t, repo.SetPrimaryShop(ctx, uuid.New(), shop.ID), repository.ErrUserNotFound)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		cfg := &config.Config{Database: &config.DatabaseConfig{TxMaxRetries: 1, TxRetryBackoff: time.Millisecond}}
		tm := NewTransactionManager(db, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
		owner := seedUser(t, db)
		abort := errors.New("abort")

		err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
			shop := &entity.Shop{ID: uuid.New(), OwnerID: owner, Title: "Ghost", Phone: "1", MessageTemplate: "x", UniqueID: "ghost-shop"}
			if err := repos.ShopRepo().Create(ctx, shop); err != nil {
				return err
			}

			return abort
		})
		assert.ErrorIs(t, err, abort)

		exists, err := NewShopRepository(db).ExistsUniqueID(ctx, "ghost-shop")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
