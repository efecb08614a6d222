package constants

// Redis key formats
const (
	// Catalog Service
	KeyCatalogAll      = "catalog:products:all"
	KeyCatalogProduct  = "catalog:product:%d"  // Format: catalog:product:{product_id}
	KeyCatalogCategory = "catalog:category:%s" // Format: catalog:category:{category}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
