package entity

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidPortion is returned for unparsable or negative portion sizes.
var ErrInvalidPortion = errors.New("invalid portion size")

// Portion is an exact amount of food in cups, kept as a reduced fraction so
// that 0.25 is always shown as 1/4.
type Portion struct {
	Num int64
	Den int64
}

// NewPortion builds a reduced portion from a fraction.
func NewPortion(num, den int64) (Portion, error) {
	if den == 0 || num < 0 || den < 0 {
		return Portion{}, ErrInvalidPortion
	}

	return portionFromRat(big.NewRat(num, den))
}

// ParsePortion accepts "1/4", "0.25" or "1".
func ParsePortion(s string) (Portion, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok || r.Sign() < 0 {
		return Portion{}, ErrInvalidPortion
	}

	return portionFromRat(r)
}

func portionFromRat(r *big.Rat) (Portion, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Portion{}, ErrInvalidPortion
	}

	return Portion{Num: r.Num().Int64(), Den: r.Denom().Int64()}, nil
}

// Rat returns the portion as a big.Rat. A zero value portion is 0.
func (p Portion) Rat() *big.Rat {
	if p.Den == 0 {
		return new(big.Rat)
	}

	return big.NewRat(p.Num, p.Den)
}

// Float64 is used for device payloads, which carry plain numbers.
func (p Portion) Float64() float64 {
	f, _ := p.Rat().Float64()

	return f
}

// IsZero reports whether no amount is set.
func (p Portion) IsZero() bool {
	return p.Num == 0
}

func (p Portion) String() string {
	return p.Rat().RatString()
}

// MarshalJSON renders the portion as a fraction string.
func (p Portion) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either a fraction string or a JSON number.
func (p *Portion) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return errors.WithStack(err)
		}
		raw = []byte(s)
	}

	parsed, err := ParsePortion(string(raw))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// MotorTiming maps a portion to the motor parameters that dispense it.
type MotorTiming struct {
	ID               uuid.UUID `json:"id"`
	FeedAmount       Portion   `json:"feed_amount"`
	MotorDuration    int       `json:"motor_duration"`    // Milliseconds the auger runs.
	InterrupterCount int       `json:"interrupter_count"` // Optical interrupter ticks per portion.
}

// Manual feeds fall back to a quarter cup at seven ticks when no timing row exists.
const (
	DefaultManualTicks = 7
)

// DefaultManualPortion is the amount dispensed by a manual feed request without a timing.
var DefaultManualPortion = Portion{Num: 1, Den: 4}
