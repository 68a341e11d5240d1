package rules

import (
	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/board"
)

const JailFine = 50

type ReleaseMethod string

const (
	ReleasePay     ReleaseMethod = "pay"
	ReleaseCard    ReleaseMethod = "card"
	ReleaseDoubles ReleaseMethod = "doubles"
)

type JailRelease struct {
	Method         ReleaseMethod `json:"method"`
	AmountPaid     int           `json:"amount_paid"`
	CardsRemaining int           `json:"cards_remaining"`
}

type JailStay struct {
	Released    *JailRelease `json:"released,omitempty"`
	JailTurns   int          `json:"jail_turns"`
	MustPayNext bool         `json:"must_pay_next"`
}

// SendToJail puts the player on the jail space with a fresh sentence.
// The caller persists position, is_in_jail and jail_turns.
func SendToJail(p *models.Player) {
	p.Position = board.JailPosition
	p.IsInJail = true
	p.JailTurns = 0
}

// Release clears jail state by one of the three methods. Doubles is
// unconditional; the caller has already validated the roll.
func Release(p *models.Player, method ReleaseMethod) (*JailRelease, error) {
	if !p.IsInJail {
		return nil, newError(CodeNotInJail, "Player not in jail")
	}

	switch method {
	case ReleasePay:
		if p.Money < JailFine {
			return nil, newError(CodeInsufficientFunds, "Insufficient funds to pay jail fine")
		}
		p.Money -= JailFine
		p.IsInJail = false
		p.JailTurns = 0
		return &JailRelease{Method: ReleasePay, AmountPaid: JailFine}, nil

	case ReleaseCard:
		if p.GetOutOfJailCards == 0 {
			return nil, newError(CodeNoJailCard, "No Get Out of Jail Free cards")
		}
		p.GetOutOfJailCards--
		p.IsInJail = false
		p.JailTurns = 0
		return &JailRelease{Method: ReleaseCard, CardsRemaining: p.GetOutOfJailCards}, nil

	case ReleaseDoubles:
		p.IsInJail = false
		p.JailTurns = 0
		return &JailRelease{Method: ReleaseDoubles}, nil
	}
	return nil, newError(CodeInvalidMethod, "Invalid jail escape method")
}

// IncrementJailTurns records one more turn spent in jail. The third
// turn forces a release, preferring a card over cash; a player who has
// neither stays stuck and the error is terminal for that turn.
func IncrementJailTurns(p *models.Player) (*JailStay, error) {
	newTurns := p.JailTurns + 1

	if newTurns >= 3 {
		var rel *JailRelease
		var err error
		switch {
		case p.GetOutOfJailCards > 0:
			rel, err = Release(p, ReleaseCard)
		case p.Money >= JailFine:
			rel, err = Release(p, ReleasePay)
		default:
			return nil, newError(CodeCannotAffordJailFine, "Cannot afford jail fine after 3 turns")
		}
		if err != nil {
			return nil, err
		}
		return &JailStay{Released: rel, JailTurns: 0}, nil
	}

	p.JailTurns = newTurns
	return &JailStay{JailTurns: newTurns, MustPayNext: newTurns == 2}, nil
}
