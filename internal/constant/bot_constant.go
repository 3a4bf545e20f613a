package constant

// Dispatcher action names for plain (non-tokenized) inbound events.
const (
	ActionStart        = "start"
	ActionShareContact = "contact"
)

// Product view sources recorded by the tracking consumer.
const (
	ViewSourceCatalog = "catalog"
	ViewSourceSearch  = "search"
)

// ProductViewedTopic is the pub/sub topic for product card opens.
const ProductViewedTopic = "PRODUCT_VIEWED"

// PhonePrompt is the fixed instruction shown to unverified users on any
// guarded action.
const PhonePrompt = "Please share your phone number with the button below to start shopping."

// BreadcrumbMaxDepth bounds the parent walk when rendering category paths.
const BreadcrumbMaxDepth = 5
