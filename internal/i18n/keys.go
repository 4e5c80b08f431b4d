// internal/i18n/keys.go
package i18n

// Translation keys
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Auth
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"

	// Software
	KeySoftwareNotFound = "software.not_found"
	KeySoftwareExists   = "software.exists"
	KeyListingCreated   = "listing.created"

	// Comparison
	KeyComparisonInvalid = "comparison.invalid"
	KeyComparisonEmpty   = "comparison.empty"

	// Reviews
	KeyReviewCreated = "review.created"

	// Blog
	KeyBlogNotFound = "blog.not_found"

	// Media
	KeyMediaUploaded    = "media.uploaded"
	KeyMediaInvalidType = "media.invalid_type"
	KeyMediaMissingFile = "media.missing_file"

	// Contact
	KeyContactReceived        = "contact.received"
	KeyVendorInterestReceived = "contact.vendor_interest_received"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"

	// Errors
	KeyInternalError = "error.internal"
)
