package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/msgtemplate"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackUniqueID = "shop"
	uniqueIDSuffixN  = 1000
	// Numeric suffixes stop widening past this many extra digits.
	uniqueIDMaxExtraDigits = 6
	uniqueIDTokenLen       = 12
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager           repository.TransactionManager
	qrCodeService       service.QRCodeService
	uniqueIDMaxAttempts int
	logger              *slog.Logger
	now                 func() time.Time
	suffix              func(attempt int) string
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:           params.TxManager,
		qrCodeService:       params.QRCodeService,
		uniqueIDMaxAttempts: params.Config.Shop.UniqueIDMaxAttempts,
		logger:              params.Logger,
		now:                 time.Now,
		suffix:              uniqueIDSuffix,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop creates a shop for ownerID. The unique id comes from the request
// or the title; on collision a random suffix is appended and the insert is
// retried until a free id is found. Numeric suffixes widen per attempt and
// give way to a random token after uniqueIDMaxAttempts. The first shop of a
// user becomes its primary shop.
func (srv *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, input usecase.CreateShopInput) (*entity.Shop, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Shop title is required")
	}

	template, err := resolveMessageTemplate(input.MessageTemplate)
	if err != nil {
		return nil, err
	}

	base := uniqueIDBase(input.UniqueID, title)
	now := srv.now()

	suffix := srv.suffix
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "shop creation aborted")
		}

		candidate := base
		if attempt > 0 {
			candidate = base + "-" + suffix(attempt)
		}

		shop := &entity.Shop{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			Title:           title,
			Description:     strings.TrimSpace(input.Description),
			Category:        strings.TrimSpace(input.Category),
			Tags:            normalizeTags(input.Tags),
			Phone:           strings.TrimSpace(input.Phone),
			MessageTemplate: template,
			UniqueID:        candidate,
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return createShopTx(ctx, repoFactory, shop)
		})
		switch {
		case err == nil:
			srv.log(ctx).Info("Shop created", slog.Any("shopID", shop.ID), slog.String("uniqueID", shop.UniqueID))

			return shop, nil
		case errors.Is(err, repository.ErrUniqueIDTaken):
			srv.log(ctx).Debug("Shop unique id taken, retrying", slog.String("uniqueID", candidate), slog.Int("attempt", attempt+1))

			if attempt+1 >= srv.uniqueIDMaxAttempts {
				suffix = uniqueIDToken
			}
		default:
			return nil, errors.Wrap(err, "failed to create shop")
		}
	}
}

// uniqueIDSuffix returns a random number that gains a digit with every retry,
// so a crowded base quickly finds free space.
func uniqueIDSuffix(attempt int) string {
	n := uniqueIDSuffixN
	for range min(max(attempt-1, 0), uniqueIDMaxExtraDigits) {
		n *= 10
	}

	return strconv.Itoa(rand.IntN(n))
}

// uniqueIDToken is the suffix used once numeric attempts are exhausted.
func uniqueIDToken(int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:uniqueIDTokenLen]
}

func createShopTx(ctx context.Context, repoFactory repository.RepositoryFactory, shop *entity.Shop) error {
	shopRepo := repoFactory.ShopRepo()

	taken, err := shopRepo.ExistsUniqueID(ctx, shop.UniqueID)
	if err != nil {
		return errors.Wrap(err, "failed to check unique id")
	}
	if taken {
		return repository.ErrUniqueIDTaken
	}

	if err := shopRepo.Create(ctx, shop); err != nil {
		return err
	}

	userRepo := repoFactory.UserRepo()

	owner, err := userRepo.FindByID(ctx, shop.OwnerID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to load shop owner")
	case owner.PrimaryShopID != nil:
		return nil
	}

	if err := userRepo.SetPrimaryShop(ctx, shop.OwnerID, shop.ID); err != nil {
		return errors.Wrap(err, "failed to set primary shop")
	}

	return nil
}

// GetShop resolves ref as a shop id, then as a unique id.
func (srv *shopService) GetShop(ctx context.Context, ref string) (*entity.Shop, error) {
	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findShopByRef(ctx, repoFactory.ShopRepo(), ref)
		if err != nil {
			return err
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !shop.IsActive {
		return nil, domainerrors.ErrShopNotFound.WithMessage("Shop not found or closed")
	}

	return shop, nil
}

func findShopByRef(ctx context.Context, shopRepo repository.ShopRepository, ref string) (*entity.Shop, error) {
	var (
		shop *entity.Shop
		err  error
	)

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		shop, err = shopRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrShopNotFound) {
			shop, err = shopRepo.FindByUniqueID(ctx, ref)
		}
	} else {
		shop, err = shopRepo.FindByUniqueID(ctx, ref)
	}

	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// ListMyShops lists every shop of ownerID, including inactive ones.
func (srv *shopService) ListMyShops(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	var shops []*entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShopRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to find shops by owner")
		}
		shops = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// UpdateShop applies the non-nil fields of input for the shop owner.
func (srv *shopService) UpdateShop(ctx context.Context, userID, shopID uuid.UUID, input usecase.UpdateShopInput) (*entity.Shop, error) {
	if input.MessageTemplate != nil {
		if err := msgtemplate.Validate(*input.MessageTemplate); err != nil {
			return nil, domainerrors.ErrInvalidArgument.WithMessage("Message template is malformed")
		}
	}

	return srv.mutateOwnedShop(ctx, userID, shopID, func(shop *entity.Shop) error {
		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return domainerrors.ErrValidationFailed.WithMessage("Shop title is required")
			}
			shop.Title = title
		}
		if input.Description != nil {
			shop.Description = strings.TrimSpace(*input.Description)
		}
		if input.Category != nil {
			shop.Category = strings.TrimSpace(*input.Category)
		}
		if input.Tags != nil {
			shop.Tags = normalizeTags(input.Tags)
		}
		if input.Phone != nil {
			shop.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.MessageTemplate != nil {
			shop.MessageTemplate = *input.MessageTemplate
		}

		return nil
	})
}

// DeactivateShop closes the shop. Closed shops are hidden and cannot take orders.
func (srv *shopService) DeactivateShop(ctx context.Context, userID, shopID uuid.UUID) error {
	_, err := srv.mutateOwnedShop(ctx, userID, shopID, func(shop *entity.Shop) error {
		shop.IsActive = false

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Shop deactivated", slog.Any("shopID", shopID))

	return nil
}

func (srv *shopService) mutateOwnedShop(
	ctx context.Context,
	userID, shopID uuid.UUID,
	change func(shop *entity.Shop) error,
) (*entity.Shop, error) {
	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := loadOwnedShop(ctx, shopRepo, userID, shopID)
		if err != nil {
			return err
		}

		if err := change(found); err != nil {
			return err
		}
		found.UpdatedAt = srv.now()

		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// SetPrimaryShop marks one of the user's shops as primary.
func (srv *shopService) SetPrimaryShop(ctx context.Context, userID, shopID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedShop(ctx, repoFactory.ShopRepo(), userID, shopID); err != nil {
			return err
		}

		err := repoFactory.UserRepo().SetPrimaryShop(ctx, userID, shopID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrShopNotFound):
			return domainerrors.ErrShopNotFound
		case err != nil:
			return errors.Wrap(err, "failed to set primary shop")
		}

		return nil
	})
}

// ToggleFollow adds or removes userID from the shop's followers.
func (srv *shopService) ToggleFollow(ctx context.Context, userID, shopID uuid.UUID) (entity.ToggleResult, error) {
	return srv.toggle(ctx, func(shopRepo repository.ShopRepository) (entity.ToggleResult, error) {
		return shopRepo.ToggleFollower(ctx, shopID, userID)
	})
}

// ToggleLike adds or removes userID from the shop's likes.
func (srv *shopService) ToggleLike(ctx context.Context, userID, shopID uuid.UUID) (entity.ToggleResult, error) {
	return srv.toggle(ctx, func(shopRepo repository.ShopRepository) (entity.ToggleResult, error) {
		return shopRepo.ToggleLike(ctx, shopID, userID)
	})
}

func (srv *shopService) toggle(
	ctx context.Context,
	apply func(shopRepo repository.ShopRepository) (entity.ToggleResult, error),
) (entity.ToggleResult, error) {
	var result entity.ToggleResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		toggled, err := apply(repoFactory.ShopRepo())
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to toggle shop membership")
		}
		result = toggled

		return nil
	})

	return result, err
}

// Share records a share of the shop and returns the new share count.
func (srv *shopService) Share(ctx context.Context, shopID uuid.UUID) (int, error) {
	var shares int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.ShopRepo().IncrementShares(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to increment shares")
		}
		shares = count

		return nil
	})

	return shares, err
}

// GenerateShopQR renders a share QR code for an active shop.
func (srv *shopService) GenerateShopQR(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	shop, err := srv.GetShop(ctx, shopID.String())
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateShopQR(shop.UniqueID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

func loadOwnedShop(ctx context.Context, shopRepo repository.ShopRepository, userID, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	if !shop.IsOwnedBy(userID) {
		return nil, domainerrors.ErrForbidden.WithMessage("Not your shop")
	}

	return shop, nil
}

// resolveMessageTemplate returns the default template for an empty input and
// rejects templates that cannot be rendered.
func resolveMessageTemplate(template string) (string, error) {
	if strings.TrimSpace(template) == "" {
		return msgtemplate.DefaultTemplate, nil
	}

	if err := msgtemplate.Validate(template); err != nil {
		return "", domainerrors.ErrInvalidArgument.WithMessage("Message template is malformed")
	}

	return template, nil
}

func uniqueIDBase(requested, title string) string {
	source := strings.TrimSpace(requested)
	if source == "" {
		source = title
	}

	if base := slug.Make(source); base != "" {
		return base
	}

	return fallbackUniqueID
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}
