package commerce

import (
	"context"
	"strings"
	"time"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// SimulatedProcessor approximates a card gateway with a fixed authorization
// delay. A cancelled context aborts the charge before it takes effect.
type SimulatedProcessor struct {
	delay  time.Duration
	logger *logger.Logger
}

// NewSimulatedProcessor creates the demo payment processor.
func NewSimulatedProcessor(delayMS int, log *logger.Logger) *SimulatedProcessor {
	return &SimulatedProcessor{
		delay:  time.Duration(delayMS) * time.Millisecond,
		logger: log,
	}
}

// Charge validates the card and waits out the simulated authorization.
func (p *SimulatedProcessor) Charge(ctx context.Context, card *types.CardDetails, amount float64) error {
	if err := ValidateCard(card); err != nil {
		return err
	}
	if amount <= 0 {
		return types.NewValidationError(types.ErrCodeInvalidInput, "charge amount must be positive", nil)
	}

	select {
	case <-ctx.Done():
		p.logger.WithField("amount", amount).Warn("Payment aborted before authorization")
		return ctx.Err()
	case <-time.After(p.delay):
	}

	p.logger.WithField("amount", amount).Info("Payment authorized")
	return nil
}

// ValidateCard checks the payment form fields. The card number must be 16
// digits once spaces are stripped.
func ValidateCard(card *types.CardDetails) error {
	if card == nil {
		return types.NewValidationError(types.ErrCodeInvalidInput, "card details are required", nil)
	}

	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) != 16 {
		return types.NewValidationError(types.ErrCodeInvalidInput, "card number must be 16 digits", nil)
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return types.NewValidationError(types.ErrCodeInvalidInput, "card number must be 16 digits", nil)
		}
	}

	if card.Expiry == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput, "card expiry is required", nil)
	}
	if len(card.CVV) != 3 {
		return types.NewValidationError(types.ErrCodeInvalidInput, "card cvv must be 3 digits", nil)
	}

	return nil
}

// FormatCardNumber renders a card number in groups of four for receipts.
func FormatCardNumber(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

var _ interfaces.PaymentProcessor = (*SimulatedProcessor)(nil)
