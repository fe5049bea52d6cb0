package backend

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

// FormatToEngine converts a Format to the engine's format constant.
// This is the only place where the mapping between ABI formats and engine
// formats exists.
func FormatToEngine(f Format) (phonenumbers.PhoneNumberFormat, error) {
	switch f {
	case E164:
		return phonenumbers.E164, nil
	case International:
		return phonenumbers.INTERNATIONAL, nil
	case National:
		return phonenumbers.NATIONAL, nil
	case RFC3966:
		return phonenumbers.RFC3966, nil
	default:
		return 0, ErrUnknownFormat
	}
}

// NumberTypeFromEngine converts an engine classification to its ABI
// ordinal. The engine orders VOIP before PERSONAL_NUMBER while the ABI does
// not, so the mapping is spelled out value by value. Classifications the
// engine may add later land on Unknown.
func NumberTypeFromEngine(t phonenumbers.PhoneNumberType) NumberType {
	switch t {
	case phonenumbers.FIXED_LINE:
		return FixedLine
	case phonenumbers.MOBILE:
		return Mobile
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return FixedLineOrMobile
	case phonenumbers.TOLL_FREE:
		return TollFree
	case phonenumbers.PREMIUM_RATE:
		return PremiumRate
	case phonenumbers.SHARED_COST:
		return SharedCost
	case phonenumbers.VOIP:
		return Voip
	case phonenumbers.PERSONAL_NUMBER:
		return PersonalNumber
	case phonenumbers.PAGER:
		return Pager
	case phonenumbers.UAN:
		return Uan
	case phonenumbers.VOICEMAIL:
		return Voicemail
	default:
		return Unknown
	}
}

// NumberTypeToEngine is the inverse of NumberTypeFromEngine. Emergency,
// ShortCode, StandardRate, Carrier and NoInternational are short-number
// categories the engine does not classify full numbers into.
func NumberTypeToEngine(t NumberType) (phonenumbers.PhoneNumberType, error) {
	switch t {
	case FixedLine:
		return phonenumbers.FIXED_LINE, nil
	case Mobile:
		return phonenumbers.MOBILE, nil
	case FixedLineOrMobile:
		return phonenumbers.FIXED_LINE_OR_MOBILE, nil
	case TollFree:
		return phonenumbers.TOLL_FREE, nil
	case PremiumRate:
		return phonenumbers.PREMIUM_RATE, nil
	case SharedCost:
		return phonenumbers.SHARED_COST, nil
	case Voip:
		return phonenumbers.VOIP, nil
	case PersonalNumber:
		return phonenumbers.PERSONAL_NUMBER, nil
	case Pager:
		return phonenumbers.PAGER, nil
	case Uan:
		return phonenumbers.UAN, nil
	case Voicemail:
		return phonenumbers.VOICEMAIL, nil
	default:
		return phonenumbers.UNKNOWN, errors.New("number type has no engine equivalent")
	}
}
