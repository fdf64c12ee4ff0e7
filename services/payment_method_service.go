package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
)

type PaymentMethodService interface {
	Add(ctx context.Context, userID int, input AddPaymentMethodInput) (*models.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int) ([]models.PaymentMethod, error)
	Delete(ctx context.Context, userID, methodID int) error
	SetDefault(ctx context.Context, userID, methodID int) error
}

type AddPaymentMethodInput struct {
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	CardType       string `json:"card_type"`
	IsDefault      bool   `json:"is_default"`
}

type paymentMethodService struct {
	db         *sql.DB
	methodRepo repositories.PaymentMethodRepository
}

func NewPaymentMethodService(db *sql.DB, methodRepo repositories.PaymentMethodRepository) PaymentMethodService {
	return &paymentMethodService{
		db:         db,
		methodRepo: methodRepo,
	}
}

// Add stores a new card, keeping only its last four digits. The first
// stored method always becomes the default. The count, the clearing of
// the old default and the insert share one transaction, so concurrent
// adds cannot leave a user with zero or two defaults.
func (s *paymentMethodService) Add(ctx context.Context, userID int, input AddPaymentMethodInput) (*models.PaymentMethod, error) {
	masked, err := maskCardNumber(input.CardNumber)
	if err != nil {
		return nil, err
	}
	if input.ExpiryMonth < 1 || input.ExpiryMonth > 12 {
		return nil, ErrValidationFailed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := s.methodRepo.CountByUser(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count payment methods: %w", err)
	}

	makeDefault := input.IsDefault || count == 0
	if makeDefault && count > 0 {
		if err := s.methodRepo.ClearDefaultForUser(ctx, tx, userID); err != nil {
			return nil, fmt.Errorf("failed to clear previous default: %w", err)
		}
	}

	method := &models.PaymentMethod{
		UserID:         userID,
		CardNumber:     masked,
		CardHolderName: input.CardHolderName,
		ExpiryMonth:    input.ExpiryMonth,
		ExpiryYear:     input.ExpiryYear,
		CardType:       input.CardType,
		IsDefault:      makeDefault,
	}
	if err := s.methodRepo.Create(ctx, tx, method); err != nil {
		return nil, fmt.Errorf("failed to store payment method: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment method: %w", err)
	}
	return method, nil
}

func (s *paymentMethodService) ListByUser(ctx context.Context, userID int) ([]models.PaymentMethod, error) {
	methods, err := s.methodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods for user %d: %w", userID, err)
	}
	return methods, nil
}

// Delete removes a method the user owns. When the default is removed and
// other methods remain, the oldest one is promoted so the user keeps
// exactly one default.
func (s *paymentMethodService) Delete(ctx context.Context, userID, methodID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	method, err := s.methodRepo.GetByID(ctx, tx, methodID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return ErrPaymentMethodNotFound
		}
		return fmt.Errorf("failed to get payment method %d: %w", methodID, err)
	}
	if method.UserID != userID {
		// Not owned reads the same as absent to the caller.
		return ErrPaymentMethodNotFound
	}

	if err := s.methodRepo.Delete(ctx, tx, methodID); err != nil {
		return fmt.Errorf("failed to delete payment method %d: %w", methodID, err)
	}

	if method.IsDefault {
		remaining, err := s.methodRepo.OldestForUser(ctx, tx, userID)
		switch {
		case err == nil:
			if err := s.methodRepo.SetDefault(ctx, tx, remaining.ID); err != nil {
				return fmt.Errorf("failed to promote replacement default: %w", err)
			}
		case errors.Is(err, repositories.ErrPaymentMethodNotFound):
			// Last method deleted; nothing to promote.
		default:
			return fmt.Errorf("failed to find replacement default: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment method delete: %w", err)
	}
	return nil
}

func (s *paymentMethodService) SetDefault(ctx context.Context, userID, methodID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	method, err := s.methodRepo.GetByID(ctx, tx, methodID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return ErrPaymentMethodNotFound
		}
		return fmt.Errorf("failed to get payment method %d: %w", methodID, err)
	}
	if method.UserID != userID {
		return ErrPaymentMethodNotFound
	}

	if err := s.methodRepo.ClearDefaultForUser(ctx, tx, userID); err != nil {
		return fmt.Errorf("failed to clear previous default: %w", err)
	}
	if err := s.methodRepo.SetDefault(ctx, tx, methodID); err != nil {
		return fmt.Errorf("failed to set default payment method: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit default change: %w", err)
	}
	return nil
}

// maskCardNumber keeps only the last four digits of the card.
func maskCardNumber(number string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) < 4 {
		return "", ErrCardNumberInvalid
	}
	return "**** **** **** " + digits[len(digits)-4:], nil
}
