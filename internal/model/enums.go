package model

// MeasurementUnit is the unit a quantity is expressed in.
// BOM lines, inventory entries, and order items all carry their own unit;
// no automatic conversion happens between them.
type MeasurementUnit string

const (
	UnitGram     MeasurementUnit = "GRAM"
	UnitKilogram MeasurementUnit = "KILOGRAM"
	UnitMeter    MeasurementUnit = "METER"
	UnitYard     MeasurementUnit = "YARD"
	UnitUnit     MeasurementUnit = "UNIT"
)

// Phase tracks a product through sampling into production.
// Informational only — no transition rules are enforced.
type Phase string

const (
	PhaseSwatch           Phase = "SWATCH"
	PhaseInitialSample    Phase = "INITIAL_SAMPLE"
	PhaseFitSample        Phase = "FIT_SAMPLE"
	PhaseProductionSample Phase = "PRODUCTION_SAMPLE"
	PhaseProduction       Phase = "PRODUCTION"
)

// OrderStatus is the lifecycle state of a material purchase order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ContactType classifies an address-book entry.
type ContactType string

const (
	ContactSupplier     ContactType = "SUPPLIER"
	ContactManufacturer ContactType = "MANUFACTURER"
	ContactCustomer     ContactType = "CUSTOMER"
	ContactOther        ContactType = "OTHER"
)

// InventoryType says whether an inventory row holds a material or a finished product.
type InventoryType string

const (
	InventoryMaterial InventoryType = "MATERIAL"
	InventoryProduct  InventoryType = "PRODUCT"
)

// MovementType classifies an inventory movement.
type MovementType string

const (
	MovementReceived MovementType = "RECEIVED"
	MovementConsumed MovementType = "CONSUMED"
	MovementAdjusted MovementType = "ADJUSTED"
	MovementReturned MovementType = "RETURNED"
	MovementScrapped MovementType = "SCRAPPED"
)
