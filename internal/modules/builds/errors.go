package builds

import "errors"

var (
	ErrNotFound            = errors.New("build not found")
	ErrUnknownSlot         = errors.New("unknown build slot")
	ErrSlotEmpty           = errors.New("build slot is empty")
	ErrUnknownComponent    = errors.New("unknown component")
	ErrUnknownOffering     = errors.New("unknown offering")
	ErrOfferingUnavailable = errors.New("offering no longer available")
	ErrSlotMismatch        = errors.New("component does not belong to slot")
)
