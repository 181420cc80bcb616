package booking

import (
	"regexp"
	"strings"

	"home-dispatch/internal/pkg/errs"
)

const (
	MaxAddressLength      = 500
	MaxRequirementsLength = 2000
	MaxCancelReasonLength = 500
)

var (
	ErrInvalidCategory     = errs.Mark(errs.New("service category must be a lowercase slug"), errs.ErrDomainValidation)
	ErrEmptyAddress        = errs.Mark(errs.New("address cannot be empty"), errs.ErrDomainValidation)
	ErrAddressTooLong      = errs.Mark(errs.New("address exceeds maximum length"), errs.ErrDomainValidation)
	ErrRequirementsTooLong = errs.Mark(errs.New("requirements exceed maximum length"), errs.ErrDomainValidation)
	ErrInvalidLocation     = errs.Mark(errs.New("latitude must be within [-90,90] and longitude within [-180,180]"), errs.ErrDomainValidation)
	ErrNegativeAmount      = errs.Mark(errs.New("amount cannot be negative"), errs.ErrDomainValidation)
	ErrReasonTooLong       = errs.Mark(errs.New("cancel reason exceeds maximum length"), errs.ErrDomainValidation)
)

var categoryRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,49}$`)

type ServiceCategory struct {
	value string
}

func NewServiceCategory(s string) (ServiceCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !categoryRegex.MatchString(s) {
		return ServiceCategory{}, ErrInvalidCategory
	}
	return ServiceCategory{value: s}, nil
}

func (c ServiceCategory) String() string {
	return c.value
}

// Address is free text with optional structured parts used for routing.
type Address struct {
	line       string
	city       string
	postalCode string
}

func NewAddress(line, city, postalCode string) (Address, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Address{}, ErrEmptyAddress
	}
	if len([]rune(line)) > MaxAddressLength {
		return Address{}, ErrAddressTooLong
	}
	return Address{
		line:       line,
		city:       strings.TrimSpace(city),
		postalCode: strings.TrimSpace(postalCode),
	}, nil
}

func (a Address) Line() string       { return a.line }
func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }

// Full joins the parts for geocoding.
func (a Address) Full() string {
	parts := []string{a.line}
	if a.city != "" {
		parts = append(parts, a.city)
	}
	if a.postalCode != "" {
		parts = append(parts, a.postalCode)
	}
	return strings.Join(parts, ", ")
}

type Location struct {
	lat float64
	lng float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLocation
	}
	return Location{lat: lat, lng: lng}, nil
}

func (l Location) Lat() float64 { return l.lat }
func (l Location) Lng() float64 { return l.lng }

// Money is an amount in minor currency units.
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}
