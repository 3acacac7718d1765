package domain

import "errors"

var (
	ErrInvalidID             = errors.New("invalid id")
	ErrToyNotFound           = errors.New("toy not found")
	ErrToyNameRequired       = errors.New("toy name required")
	ErrToyAlreadyExists      = errors.New("toy already exists")
	ErrToyInUse              = errors.New("toy referenced by orders")
	ErrInvalidBuildTime      = errors.New("invalid build time")
	ErrInvalidStock          = errors.New("invalid stock")
	ErrElfNotFound           = errors.New("elf not found")
	ErrElfNameRequired       = errors.New("elf name required")
	ErrElfAlreadyExists      = errors.New("elf already exists")
	ErrSkillsRequired        = errors.New("at least one skill required")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrChildNameRequired     = errors.New("child name required")
	ErrAddressRequired       = errors.New("address required")
	ErrInvalidPriority       = errors.New("priority must be between 1 and 5")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrNoDeliverableOrders   = errors.New("no deliverable orders")
	ErrEmptyPlan             = errors.New("no assignments planned")
)
